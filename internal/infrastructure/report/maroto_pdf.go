// Package report implementa los renderizadores del reporte de inventario.
//
// Layout del PDF (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  Título + fecha de generación                 │
//	│  Resumen: títulos / unidades / valor total    │
//	│  Tabla: ID | Nombre | Cant. | Precio | Valor   │
//	│  Stock bajo (cantidad <= umbral)              │
//	└──────────────────────────────────────────────┘
package report

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appreport "github.com/jhoicas/boardgame-tracker/internal/application/report"
)

var _ appreport.Renderer = (*MarotoPDFRenderer)(nil)

var (
	colorPrimary = &props.Color{Red: 51, Green: 51, Blue: 51}
	colorGray    = &props.Color{Red: 110, Green: 110, Blue: 110}
	colorAlert   = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// MarotoPDFRenderer genera el reporte en PDF con Maroto v2.
type MarotoPDFRenderer struct {
	title string
}

// NewMarotoPDFRenderer construye el renderizador; title encabeza el documento.
func NewMarotoPDFRenderer(title string) *MarotoPDFRenderer {
	return &MarotoPDFRenderer{title: title}
}

func (r *MarotoPDFRenderer) Format() string      { return "pdf" }
func (r *MarotoPDFRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *MarotoPDFRenderer) Render(_ context.Context, s *appreport.Summary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.titleRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, l := range s.Lines {
		m.AddRows(tableLineRow(l))
	}

	m.AddRows(line.NewRow(4))
	m.AddRows(lowStockRows(s)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (r *MarotoPDFRenderer) titleRow(s *appreport.Summary) core.Row {
	return row.New(16).Add(
		col.New(8).Add(text.New(r.title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(text.New("Generado: "+s.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 5,
		})),
	)
}

func summaryRow(s *appreport.Summary) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("Títulos", fmt.Sprintf("%d", s.Titles)),
		cell("Unidades", fmt.Sprintf("%d", s.TotalUnits)),
		cell("Valor del stock", "$"+s.TotalValue.StringFixed(2)),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Left),
		h("Nombre", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 3, align.Right),
	)
}

func tableLineRow(l appreport.Line) core.Row {
	var qtyColor *props.Color
	if l.LowStock {
		qtyColor = colorAlert
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(l.ID, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1, Color: qtyColor})),
		col.New(2).Add(text.New(l.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
		col.New(3).Add(text.New(l.StockValue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func lowStockRows(s *appreport.Summary) []core.Row {
	title := fmt.Sprintf("Stock bajo (cantidad <= %d)", s.LowStockThreshold)
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorAlert, Top: 2,
		}))),
	}
	if len(s.LowStock) == 0 {
		return append(rows, row.New(6).Add(col.New(12).Add(text.New("Sin juegos con stock bajo.", props.Text{Size: 8, Color: colorGray}))))
	}
	for _, l := range s.LowStock {
		rows = append(rows, row.New(6).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%s · %s: %d", l.ID, l.Name, l.Quantity),
			props.Text{Size: 8},
		))))
	}
	return rows
}
