package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgame-tracker/internal/application/seed"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

func TestSeeder_OmiteExistentes(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())
	s := seed.NewSeeder(uc, logger.Nop())

	games := []entity.BoardGame{
		{ID: "1", Name: "Catan", Description: "Colonos", Quantity: 3, Price: 39.99},
		{ID: "2", Name: "Azul", Description: "Azulejos", Quantity: 1, Price: 29.5},
	}
	res, err := s.Run(ctx, games)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Created: 2}, res)

	res, err = s.Run(ctx, games)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Skipped: 2}, res)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
}

func TestSeeder_ErrorDeValidacionCorta(t *testing.T) {
	uc := usecase.NewBoardGameUseCase(memory.NewBoardGameRepository())
	s := seed.NewSeeder(uc, logger.Nop())

	res, err := s.Run(context.Background(), []entity.BoardGame{
		{ID: "1", Name: "Catan", Description: "Colonos", Quantity: 3, Price: 39.99},
		{ID: "2", Name: "", Description: "x"},
		{ID: "3", Name: "Azul", Description: "x"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, res.Created)
}
