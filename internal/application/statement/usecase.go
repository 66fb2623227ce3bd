// Package statement orquesta la generación de estados de cuenta: carga el
// catálogo y la factura, delega el cálculo puro a domain/billing y resuelve
// render, archivado y exports.
package statement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/teatro-billing/internal/application/dto"
	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/billing"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
	"github.com/tu-usuario/teatro-billing/pkg/logger"
)

// GenerateUseCase genera estados de cuenta a partir de facturas inline o persistidas.
type GenerateUseCase struct {
	playRepo      repository.PlayRepository
	invoiceRepo   repository.InvoiceRepository
	statementRepo repository.StatementRepository // nil = sin archivado
	money         billing.CurrencyFormatter
	pdf           StatementPDFGenerator
	xml           StatementXMLBuilder
	log           *logger.Logger
}

// NewGenerateUseCase construye el caso de uso.
func NewGenerateUseCase(
	playRepo repository.PlayRepository,
	invoiceRepo repository.InvoiceRepository,
	statementRepo repository.StatementRepository,
	money billing.CurrencyFormatter,
	pdf StatementPDFGenerator,
	xml StatementXMLBuilder,
	log *logger.Logger,
) *GenerateUseCase {
	return &GenerateUseCase{
		playRepo:      playRepo,
		invoiceRepo:   invoiceRepo,
		statementRepo: statementRepo,
		money:         money,
		pdf:           pdf,
		xml:           xml,
		log:           log,
	}
}

// FromRequest genera el estado de cuenta para una factura enviada inline.
// La factura no se persiste; el estado generado sí se archiva si hay repo.
func (uc *GenerateUseCase) FromRequest(ctx context.Context, in dto.StatementRequest) (*dto.StatementResponse, error) {
	if in.Customer == "" {
		return nil, fmt.Errorf("%w: customer requerido", domain.ErrInvalidInput)
	}
	invoice := &entity.Invoice{
		Customer:     in.Customer,
		Performances: make([]entity.Performance, 0, len(in.Performances)),
	}
	for _, p := range in.Performances {
		invoice.Performances = append(invoice.Performances, entity.Performance{
			PlayID:   p.PlayID,
			Audience: p.Audience,
		})
	}
	return uc.generate(ctx, invoice)
}

// ForInvoice genera el estado de cuenta de una factura persistida.
func (uc *GenerateUseCase) ForInvoice(ctx context.Context, invoiceID string) (*dto.StatementResponse, error) {
	invoice, err := uc.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generate(ctx, invoice)
}

// PDFForInvoice genera la representación PDF del estado de cuenta de una factura persistida.
func (uc *GenerateUseCase) PDFForInvoice(ctx context.Context, invoiceID string) ([]byte, error) {
	st, err := uc.aggregateInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStatementPDF(ctx, st, uc.money)
}

// XMLForInvoice genera el export XML del estado de cuenta de una factura persistida.
func (uc *GenerateUseCase) XMLForInvoice(ctx context.Context, invoiceID string) ([]byte, error) {
	st, err := uc.aggregateInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.xml.Build(st)
}

// ArchivedStatement devuelve un estado de cuenta archivado tal como se generó.
func (uc *GenerateUseCase) ArchivedStatement(ctx context.Context, id string) (*dto.StatementResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: statementID requerido", domain.ErrInvalidInput)
	}
	if uc.statementRepo == nil {
		return nil, domain.ErrNotFound
	}
	st, err := uc.statementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("leer estado archivado: %w", err)
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(st), nil
}

func (uc *GenerateUseCase) loadInvoice(ctx context.Context, invoiceID string) (*entity.Invoice, error) {
	if invoiceID == "" {
		return nil, fmt.Errorf("%w: invoiceID requerido", domain.ErrInvalidInput)
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

func (uc *GenerateUseCase) aggregateInvoice(ctx context.Context, invoiceID string) (*entity.Statement, error) {
	invoice, err := uc.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.playRepo.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}
	return billing.Aggregate(invoice, catalog)
}

func (uc *GenerateUseCase) generate(ctx context.Context, invoice *entity.Invoice) (*dto.StatementResponse, error) {
	catalog, err := uc.playRepo.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}

	st, err := billing.Aggregate(invoice, catalog)
	if err != nil {
		uc.log.Warn().Err(err).Str("customer", invoice.Customer).Msg("estado de cuenta rechazado")
		return nil, err
	}
	st.ID = uuid.New().String()
	st.CreatedAt = time.Now()

	if uc.statementRepo != nil {
		if err := uc.statementRepo.Save(ctx, st); err != nil {
			return nil, fmt.Errorf("archivar estado de cuenta: %w", err)
		}
	}

	uc.log.Info().
		Str("statement_id", st.ID).
		Str("customer", st.Customer).
		Int("lines", len(st.Lines)).
		Int64("total_cents", st.Totals.AmountCents).
		Int("total_credits", st.Totals.Credits).
		Msg("estado de cuenta generado")

	return uc.toResponse(st), nil
}

func (uc *GenerateUseCase) toResponse(st *entity.Statement) *dto.StatementResponse {
	out := &dto.StatementResponse{
		ID:               st.ID,
		InvoiceID:        st.InvoiceID,
		Customer:         st.Customer,
		Lines:            make([]dto.StatementLineResponse, 0, len(st.Lines)),
		TotalAmountCents: st.Totals.AmountCents,
		TotalAmount:      uc.money.Format(st.Totals.AmountCents),
		TotalCredits:     st.Totals.Credits,
		Text:             billing.Render(st, uc.money),
	}
	for _, line := range st.Lines {
		out.Lines = append(out.Lines, dto.StatementLineResponse{
			PlayName:    line.PlayName,
			AmountCents: line.AmountCents,
			Amount:      uc.money.Format(line.AmountCents),
			Audience:    line.Audience,
			Credits:     line.Credits,
		})
	}
	return out
}
