package repository

import (
	"context"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para facturas de funciones.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	// GetByID devuelve la factura con sus funciones en el orden original.
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
}
