package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgame-tracker/internal/application/dto"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/memory"
)

func catan() dto.BoardGameRequest {
	return dto.BoardGameRequest{ID: "1", Name: "Catan", Description: "Colonos de Catan", Quantity: 3, Price: 39.99}
}

func TestBoardGameUseCase_CreateYGet(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())

	out, err := uc.Create(ctx, catan())
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID)
	assert.False(t, out.CreatedAt.IsZero())

	got, err := uc.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.InDelta(t, 39.99, got.Price, 1e-9)
}

func TestBoardGameUseCase_Create_IDDuplicado(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())

	_, err := uc.Create(ctx, catan())
	require.NoError(t, err)
	_, err = uc.Create(ctx, catan())
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestBoardGameUseCase_Create_Validacion(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())

	cases := map[string]func(*dto.BoardGameRequest){
		"sin id":            func(r *dto.BoardGameRequest) { r.ID = "" },
		"sin nombre":        func(r *dto.BoardGameRequest) { r.Name = "  " },
		"sin descripción":   func(r *dto.BoardGameRequest) { r.Description = "" },
		"cantidad negativa": func(r *dto.BoardGameRequest) { r.Quantity = -1 },
		"precio negativo":   func(r *dto.BoardGameRequest) { r.Price = -0.5 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := catan()
			mutate(&in)
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestBoardGameUseCase_Update_ReemplazoCompleto(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())
	created, err := uc.Create(ctx, catan())
	require.NoError(t, err)

	time.Sleep(time.Millisecond)
	in := dto.BoardGameRequest{ID: "ignorado", Name: "Catan 5ª ed.", Description: "Nueva edición", Quantity: 5, Price: 45}
	out, err := uc.Update(ctx, "1", in)
	require.NoError(t, err)
	assert.Equal(t, "1", out.ID, "el id de la ruta prevalece")
	assert.Equal(t, "Nueva edición", out.Description)
	assert.Equal(t, created.CreatedAt, out.CreatedAt)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt))

	_, err = uc.Update(ctx, "404", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBoardGameUseCase_ListYDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())
	_, err := uc.Create(ctx, catan())
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.BoardGameRequest{ID: "2", Name: "Azul", Description: "Losetas", Quantity: 1, Price: 30})
	require.NoError(t, err)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)

	deleted, err := uc.Delete(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Azul", deleted.Name)

	_, err = uc.Delete(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetByID(ctx, "2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
