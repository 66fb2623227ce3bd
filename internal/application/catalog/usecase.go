// Package catalog administra el catálogo de obras. El campo type viene de
// fuera y se valida aquí, en la frontera: al catálogo solo entran géneros del
// conjunto cerrado.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tu-usuario/teatro-billing/internal/application/dto"
	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
)

// UseCase operaciones sobre el catálogo de obras.
type UseCase struct {
	playRepo repository.PlayRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(playRepo repository.PlayRepository) *UseCase {
	return &UseCase{playRepo: playRepo}
}

// CreatePlay registra una obra. Valida ID, nombre y género.
func (uc *UseCase) CreatePlay(ctx context.Context, in dto.CreatePlayRequest) (*dto.PlayResponse, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, fmt.Errorf("%w: id y name requeridos", domain.ErrInvalidInput)
	}
	playType, ok := entity.ParsePlayType(in.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPlayType, in.Type)
	}

	play := entity.Play{Name: name, Type: playType}
	if err := uc.playRepo.Create(ctx, id, play); err != nil {
		return nil, err
	}
	return &dto.PlayResponse{ID: id, Name: play.Name, Type: string(play.Type)}, nil
}

// GetPlay devuelve una obra por ID.
func (uc *UseCase) GetPlay(ctx context.Context, id string) (*dto.PlayResponse, error) {
	play, err := uc.playRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if play == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PlayResponse{ID: id, Name: play.Name, Type: string(play.Type)}, nil
}

// ListPlays devuelve el catálogo completo ordenado por ID.
func (uc *UseCase) ListPlays(ctx context.Context) ([]dto.PlayResponse, error) {
	cat, err := uc.playRepo.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PlayResponse, 0, len(cat))
	for id, play := range cat {
		out = append(out, dto.PlayResponse{ID: id, Name: play.Name, Type: string(play.Type)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
