package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// FormValues valores crudos del formulario de alta/edición. Todos son obligatorios.
type FormValues struct {
	ID          string `form:"id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	Quantity    string `form:"quantity"`
	Price       string `form:"price"`
}

// Parse exige todos los campos, convierte quantity a entero y price a float64 y valida el juego.
func (f FormValues) Parse() (entity.BoardGame, error) {
	required := []struct{ name, value string }{
		{"id", f.ID},
		{"name", f.Name},
		{"description", f.Description},
		{"quantity", f.Quantity},
		{"price", f.Price},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return entity.BoardGame{}, fmt.Errorf("%w: %s es requerido", domain.ErrInvalidInput, r.name)
		}
	}

	qty, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		return entity.BoardGame{}, fmt.Errorf("%w: quantity %q no es un entero", domain.ErrInvalidInput, f.Quantity)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return entity.BoardGame{}, fmt.Errorf("%w: price %q no es un número", domain.ErrInvalidInput, f.Price)
	}

	game := entity.BoardGame{
		ID:          strings.TrimSpace(f.ID),
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		Quantity:    qty,
		Price:       price,
	}
	if err := game.Validate(); err != nil {
		return entity.BoardGame{}, err
	}
	return game, nil
}
