package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository sobre PostgreSQL.
// Las funciones se guardan con columna position para preservar el orden de la
// factura, que determina el orden de las líneas del estado de cuenta.
type InvoiceRepo struct {
	db TxQuerier
}

// NewInvoiceRepository construye el adaptador sobre un pool o una tx abierta.
func NewInvoiceRepository(db TxQuerier) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create persiste cabecera y funciones en una sola transacción: o entra la
// factura completa o no entra nada.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if invoice == nil {
		return domain.ErrInvalidInput
	}
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO invoices (id, customer, created_at)
		VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, query, invoice.ID, invoice.Customer, invoice.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice %q", domain.ErrDuplicate, invoice.ID)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	detail := `
		INSERT INTO performances (invoice_id, position, play_id, audience)
		VALUES ($1, $2, $3, $4)`
	for i, p := range invoice.Performances {
		if _, err := tx.Exec(ctx, detail, invoice.ID, i, p.PlayID, p.Audience); err != nil {
			return fmt.Errorf("insert performance %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByID obtiene la factura con sus funciones ordenadas por position.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT id, customer, created_at FROM invoices WHERE id = $1`
	invoice := &entity.Invoice{}
	err := r.db.QueryRow(ctx, query, id).Scan(&invoice.ID, &invoice.Customer, &invoice.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select invoice: %w", err)
	}

	detail := `
		SELECT play_id, audience
		FROM performances
		WHERE invoice_id = $1
		ORDER BY position`
	rows, err := r.db.Query(ctx, detail, id)
	if err != nil {
		return nil, fmt.Errorf("select performances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.Performance
		if err := rows.Scan(&p.PlayID, &p.Audience); err != nil {
			return nil, fmt.Errorf("scan performance: %w", err)
		}
		invoice.Performances = append(invoice.Performances, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar performances: %w", err)
	}
	return invoice, nil
}
