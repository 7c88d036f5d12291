package report

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	appreport "github.com/jhoicas/boardgame-tracker/internal/application/report"
)

var _ appreport.Renderer = (*XMLRenderer)(nil)

// XMLRenderer exporta el reporte como XML (para hojas de cálculo u otros sistemas).
type XMLRenderer struct{}

// NewXMLRenderer construye el renderizador.
func NewXMLRenderer() *XMLRenderer { return &XMLRenderer{} }

func (r *XMLRenderer) Format() string      { return "xml" }
func (r *XMLRenderer) ContentType() string { return "application/xml" }

// Render produce:
//
//	<InventoryReport generatedAt="...">
//	  <Summary titles=".." units=".." totalValue=".." lowStockThreshold=".."/>
//	  <BoardGames><BoardGame id=".." lowStock="true|false">...</BoardGame></BoardGames>
//	</InventoryReport>
func (r *XMLRenderer) Render(_ context.Context, s *appreport.Summary) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("InventoryReport")
	root.CreateAttr("generatedAt", s.GeneratedAt.UTC().Format(time.RFC3339))

	sum := root.CreateElement("Summary")
	sum.CreateAttr("titles", strconv.Itoa(s.Titles))
	sum.CreateAttr("units", strconv.Itoa(s.TotalUnits))
	sum.CreateAttr("totalValue", s.TotalValue.StringFixed(2))
	sum.CreateAttr("lowStockThreshold", strconv.Itoa(s.LowStockThreshold))

	games := root.CreateElement("BoardGames")
	for _, l := range s.Lines {
		g := games.CreateElement("BoardGame")
		g.CreateAttr("id", l.ID)
		g.CreateAttr("lowStock", strconv.FormatBool(l.LowStock))
		g.CreateElement("Name").SetText(l.Name)
		g.CreateElement("Description").SetText(l.Description)
		g.CreateElement("Quantity").SetText(strconv.Itoa(l.Quantity))
		g.CreateElement("Price").SetText(l.Price.StringFixed(2))
		g.CreateElement("StockValue").SetText(l.StockValue.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xml: serializar reporte: %w", err)
	}
	return out, nil
}
