package repository

import (
	"context"

	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// BoardGameRepository define el puerto de persistencia para BoardGame (DIP).
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type BoardGameRepository interface {
	Create(ctx context.Context, game *entity.BoardGame) error
	GetByID(ctx context.Context, id string) (*entity.BoardGame, error)
	Update(ctx context.Context, game *entity.BoardGame) error
	List(ctx context.Context) ([]*entity.BoardGame, error)
	Delete(ctx context.Context, id string) error
}
