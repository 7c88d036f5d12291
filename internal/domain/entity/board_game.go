package entity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/boardgame-tracker/internal/domain"
)

// BoardGame representa un juego de mesa del inventario.
// El ID lo asigna quien crea el registro; nunca se genera internamente.
type BoardGame struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate verifica los campos obligatorios y los rangos (cantidad y precio no negativos).
func (b *BoardGame) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("%w: id es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(b.Description) == "" {
		return fmt.Errorf("%w: description es requerido", domain.ErrInvalidInput)
	}
	if b.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	if b.Price < 0 || math.IsNaN(b.Price) || math.IsInf(b.Price, 0) {
		return fmt.Errorf("%w: price debe ser un número finito no negativo", domain.ErrInvalidInput)
	}
	return nil
}
