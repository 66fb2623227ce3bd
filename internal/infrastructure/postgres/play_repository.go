package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
)

var _ repository.PlayRepository = (*PlayRepo)(nil)

// PlayRepo implementación de PlayRepository sobre PostgreSQL.
type PlayRepo struct {
	q Querier
}

// NewPlayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPlayRepository(q Querier) *PlayRepo {
	return &PlayRepo{q: q}
}

// Create registra una obra en el catálogo.
func (r *PlayRepo) Create(ctx context.Context, id string, play entity.Play) error {
	query := `
		INSERT INTO plays (id, name, type)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(ctx, query, id, play.Name, string(play.Type))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: play %q", domain.ErrDuplicate, id)
		}
		return fmt.Errorf("insert play: %w", err)
	}
	return nil
}

// GetByID devuelve la obra o nil si no existe. Un type inválido en la fila es
// dato corrupto del catálogo y se reporta como ErrUnknownPlayType.
func (r *PlayRepo) GetByID(ctx context.Context, id string) (*entity.Play, error) {
	query := `SELECT name, type FROM plays WHERE id = $1`
	var name, rawType string
	err := r.q.QueryRow(ctx, query, id).Scan(&name, &rawType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select play: %w", err)
	}
	playType, ok := entity.ParsePlayType(rawType)
	if !ok {
		return nil, fmt.Errorf("%w: %q (play %q)", domain.ErrUnknownPlayType, rawType, id)
	}
	return &entity.Play{Name: name, Type: playType}, nil
}

// Catalog carga el catálogo completo validando el género de cada fila.
func (r *PlayRepo) Catalog(ctx context.Context) (entity.PlayCatalog, error) {
	query := `SELECT id, name, type FROM plays`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select plays: %w", err)
	}
	defer rows.Close()

	catalog := make(entity.PlayCatalog)
	for rows.Next() {
		var id, name, rawType string
		if err := rows.Scan(&id, &name, &rawType); err != nil {
			return nil, fmt.Errorf("scan play: %w", err)
		}
		playType, ok := entity.ParsePlayType(rawType)
		if !ok {
			return nil, fmt.Errorf("%w: %q (play %q)", domain.ErrUnknownPlayType, rawType, id)
		}
		catalog[id] = entity.Play{Name: name, Type: playType}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar plays: %w", err)
	}
	return catalog, nil
}
