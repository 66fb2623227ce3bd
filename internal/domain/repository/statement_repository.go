package repository

import (
	"context"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// StatementRepository define el puerto para archivar estados de cuenta generados.
// El archivo es un registro histórico: nunca se actualiza ni se borra.
type StatementRepository interface {
	Save(ctx context.Context, statement *entity.Statement) error
	GetByID(ctx context.Context, id string) (*entity.Statement, error)
}
