// Package invoicing alta y consulta de facturas de funciones. La factura se
// valida contra el catálogo al crearla: toda función debe referir una obra
// existente, así el estado de cuenta posterior no falla por referencia rota.
package invoicing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/teatro-billing/internal/application/dto"
	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
)

// UseCase operaciones sobre facturas persistidas.
type UseCase struct {
	invoiceRepo repository.InvoiceRepository
	playRepo    repository.PlayRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(invoiceRepo repository.InvoiceRepository, playRepo repository.PlayRepository) *UseCase {
	return &UseCase{invoiceRepo: invoiceRepo, playRepo: playRepo}
}

// CreateInvoice persiste una factura validando cliente, audiencias y referencias al catálogo.
func (uc *UseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Customer == "" {
		return nil, fmt.Errorf("%w: customer requerido", domain.ErrInvalidInput)
	}
	catalog, err := uc.playRepo.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar catálogo: %w", err)
	}

	invoice := &entity.Invoice{
		ID:           uuid.New().String(),
		Customer:     in.Customer,
		Performances: make([]entity.Performance, 0, len(in.Performances)),
		CreatedAt:    time.Now(),
	}
	for i, p := range in.Performances {
		if p.Audience < 0 {
			return nil, fmt.Errorf("%w: audiencia negativa en la función %d", domain.ErrInvalidInput, i+1)
		}
		if _, ok := catalog[p.PlayID]; !ok {
			return nil, fmt.Errorf("%w: playID %q (función %d)", domain.ErrUnknownPlay, p.PlayID, i+1)
		}
		invoice.Performances = append(invoice.Performances, entity.Performance{
			PlayID:   p.PlayID,
			Audience: p.Audience,
		})
	}

	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toResponse(invoice), nil
}

// GetInvoice devuelve una factura por ID con sus funciones en orden.
func (uc *UseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(invoice), nil
}

func toResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:           invoice.ID,
		Customer:     invoice.Customer,
		Performances: make([]dto.PerformanceRequest, 0, len(invoice.Performances)),
		CreatedAt:    invoice.CreatedAt.Format(time.RFC3339),
	}
	for _, p := range invoice.Performances {
		out.Performances = append(out.Performances, dto.PerformanceRequest{
			PlayID:   p.PlayID,
			Audience: p.Audience,
		})
	}
	return out
}
