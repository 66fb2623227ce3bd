package repository

import (
	"context"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// PlayRepository define el puerto de persistencia para el catálogo de obras.
type PlayRepository interface {
	Create(ctx context.Context, id string, play entity.Play) error
	GetByID(ctx context.Context, id string) (*entity.Play, error)
	// Catalog carga el catálogo completo como mapa inmutable para una corrida
	// de estado de cuenta.
	Catalog(ctx context.Context) (entity.PlayCatalog, error)
}
