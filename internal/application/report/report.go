// Package report arma el reporte de inventario detrás del enlace "Generate Report".
package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/boardgame-tracker/internal/application/ports"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
)

// Line una fila del reporte. Los montos se calculan en decimal para no acumular error de float.
type Line struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	Price       decimal.Decimal
	StockValue  decimal.Decimal // Price * Quantity
	LowStock    bool
}

// Summary reporte completo del inventario.
type Summary struct {
	GeneratedAt       time.Time
	Lines             []Line
	Titles            int
	TotalUnits        int
	TotalValue        decimal.Decimal
	LowStockThreshold int
	LowStock          []Line
}

// Renderer convierte un Summary a un formato descargable (PDF, XML).
type Renderer interface {
	Format() string
	ContentType() string
	Render(ctx context.Context, s *Summary) ([]byte, error)
}

// Document archivo listo para descargar.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// UseCase construye y renderiza el reporte consultando el API de inventario.
type UseCase struct {
	api       ports.InventoryAPI
	renderers map[string]Renderer
	threshold int
	now       func() time.Time
}

// NewUseCase construye el caso de uso. lowStockThreshold: cantidad a partir de la cual
// (inclusive) un juego se marca con stock bajo.
func NewUseCase(api ports.InventoryAPI, lowStockThreshold int, renderers ...Renderer) *UseCase {
	byFormat := make(map[string]Renderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &UseCase{api: api, renderers: byFormat, threshold: lowStockThreshold, now: time.Now}
}

// Formats devuelve los formatos disponibles ordenados.
func (uc *UseCase) Formats() []string {
	out := make([]string, 0, len(uc.renderers))
	for f := range uc.renderers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Build lista todo el inventario y calcula los totales.
func (uc *UseCase) Build(ctx context.Context) (*Summary, error) {
	games, err := uc.api.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar inventario: %w", err)
	}
	sort.SliceStable(games, func(i, j int) bool {
		a, b := strings.ToLower(games[i].Name), strings.ToLower(games[j].Name)
		if a == b {
			return games[i].ID < games[j].ID
		}
		return a < b
	})

	s := &Summary{
		GeneratedAt:       uc.now(),
		Lines:             make([]Line, 0, len(games)),
		Titles:            len(games),
		TotalValue:        decimal.Zero,
		LowStockThreshold: uc.threshold,
	}
	for _, g := range games {
		price := decimal.NewFromFloat(g.Price).Round(2)
		line := Line{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			Quantity:    g.Quantity,
			Price:       price,
			StockValue:  price.Mul(decimal.NewFromInt(int64(g.Quantity))),
			LowStock:    g.Quantity <= uc.threshold,
		}
		s.Lines = append(s.Lines, line)
		s.TotalUnits += g.Quantity
		s.TotalValue = s.TotalValue.Add(line.StockValue)
		if line.LowStock {
			s.LowStock = append(s.LowStock, line)
		}
	}
	return s, nil
}

// Generate construye el reporte y lo renderiza en el formato pedido (pdf, xml).
func (uc *UseCase) Generate(ctx context.Context, format string) (*Document, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de reporte %q no soportado", domain.ErrInvalidInput, format)
	}
	s, err := uc.Build(ctx)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("reporte: renderizar %s: %w", format, err)
	}
	return &Document{
		Filename:    fmt.Sprintf("inventario-%s.%s", s.GeneratedAt.Format("20060102-150405"), format),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
