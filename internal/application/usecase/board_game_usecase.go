package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/boardgame-tracker/internal/application/dto"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/internal/domain/repository"
)

// BoardGameUseCase casos de uso CRUD del inventario de juegos de mesa.
type BoardGameUseCase struct {
	repo repository.BoardGameRepository
	now  func() time.Time
}

// NewBoardGameUseCase construye el caso de uso.
func NewBoardGameUseCase(repo repository.BoardGameRepository) *BoardGameUseCase {
	return &BoardGameUseCase{repo: repo, now: time.Now}
}

// Create registra un juego nuevo con el ID provisto por el cliente.
// Un ID repetido devuelve domain.ErrDuplicate (lo detecta el repositorio).
func (uc *BoardGameUseCase) Create(ctx context.Context, in dto.BoardGameRequest) (*dto.BoardGameResponse, error) {
	now := uc.now()
	game := &entity.BoardGame{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, game); err != nil {
		return nil, err
	}
	return toBoardGameResponse(game), nil
}

// GetByID obtiene un juego por ID; domain.ErrNotFound si no existe.
func (uc *BoardGameUseCase) GetByID(ctx context.Context, id string) (*dto.BoardGameResponse, error) {
	game, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, domain.ErrNotFound
	}
	return toBoardGameResponse(game), nil
}

// Update reemplaza el registro completo direccionado por id (no es un patch parcial).
func (uc *BoardGameUseCase) Update(ctx context.Context, id string, in dto.BoardGameRequest) (*dto.BoardGameResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	game := &entity.BoardGame{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Quantity:    in.Quantity,
		Price:       in.Price,
		CreatedAt:   current.CreatedAt,
		UpdatedAt:   uc.now(),
	}
	if err := game.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(ctx, game); err != nil {
		return nil, err
	}
	return toBoardGameResponse(game), nil
}

// List devuelve la colección completa.
func (uc *BoardGameUseCase) List(ctx context.Context) (*dto.BoardGameListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BoardGameResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toBoardGameResponse(g))
	}
	return &dto.BoardGameListResponse{Items: items}, nil
}

// Delete elimina un juego y devuelve el registro eliminado.
func (uc *BoardGameUseCase) Delete(ctx context.Context, id string) (*dto.BoardGameResponse, error) {
	game, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return toBoardGameResponse(game), nil
}

func toBoardGameResponse(g *entity.BoardGame) *dto.BoardGameResponse {
	if g == nil {
		return nil
	}
	return &dto.BoardGameResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Quantity:    g.Quantity,
		Price:       g.Price,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
