package ports

import (
	"context"

	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// InventoryAPI es el cliente CRUD del API de inventario que consume la interfaz web.
// La interfaz lo trata como colaborador opaco: no conoce el transporte ni la persistencia.
type InventoryAPI interface {
	// ListAll lee la colección completa (sin paginación ni filtros).
	ListAll(ctx context.Context) ([]entity.BoardGame, error)
	// GetOne lee un registro; domain.ErrNotFound si no existe.
	GetOne(ctx context.Context, id string) (*entity.BoardGame, error)
	// CreateOne inserta; el id lo provee quien llama.
	CreateOne(ctx context.Context, game entity.BoardGame) (*entity.BoardGame, error)
	// UpdateOne reemplaza el registro completo direccionado por id.
	UpdateOne(ctx context.Context, game entity.BoardGame) (*entity.BoardGame, error)
	// DeleteOne elimina por id y devuelve el registro eliminado.
	DeleteOne(ctx context.Context, id string) (*entity.BoardGame, error)
}
