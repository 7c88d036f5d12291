// Package seed carga juegos de mesa iniciales en el almacenamiento del API.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhoicas/boardgame-tracker/internal/application/dto"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// Result conteo de la carga.
type Result struct {
	Created int
	Skipped int // ids que ya existían
}

// Seeder inserta juegos por el caso de uso del API, con las mismas validaciones.
type Seeder struct {
	uc  *usecase.BoardGameUseCase
	log *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(uc *usecase.BoardGameUseCase, log *logger.Logger) *Seeder {
	return &Seeder{uc: uc, log: log.Named("seed")}
}

// Run crea cada juego; los ids existentes se omiten y cualquier otro error corta la carga.
func (s *Seeder) Run(ctx context.Context, games []entity.BoardGame) (Result, error) {
	var res Result
	for _, g := range games {
		_, err := s.uc.Create(ctx, dto.BoardGameRequest{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Quantity:    g.Quantity,
			Price:       g.Price,
		})
		switch {
		case err == nil:
			res.Created++
		case errors.Is(err, domain.ErrDuplicate):
			res.Skipped++
			s.log.Debug().Str("id", g.ID).Msg("juego existente, omitido")
		default:
			return res, fmt.Errorf("sembrar %s: %w", g.ID, err)
		}
	}
	s.log.Info().Int("created", res.Created).Int("skipped", res.Skipped).Msg("carga terminada")
	return res, nil
}
