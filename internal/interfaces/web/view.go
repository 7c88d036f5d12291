package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"github.com/jhoicas/boardgame-tracker/internal/application/inventory"
	"github.com/jhoicas/boardgame-tracker/internal/application/report"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

// Etiquetas del botón del formulario.
const (
	SubmitLabelCreate = "Create Board Game"
	SubmitLabelUpdate = "Update Board Game"
)

// RowView fila de la tabla de inventario.
type RowView struct {
	ID          string
	Name        string
	Description string
	Quantity    string
	Price       string
	Editing     bool
}

// InventoryPage datos de /manage-inventory.
type InventoryPage struct {
	Header      HeaderView
	Rows        []RowView
	SubmitLabel string
	EditingID   string
	Error       string
	Loaded      bool
}

// ReportPage datos de /generate-report.
type ReportPage struct {
	Header  HeaderView
	Summary *report.Summary
	Formats []string
	Error   string
}

// HomePage datos de /.
type HomePage struct {
	Header HeaderView
	Brand  string
}

// NewInventoryPage construye el view model desde el estado del gestor.
func NewInventoryPage(header HeaderView, st inventory.State) InventoryPage {
	p := InventoryPage{
		Header:      header,
		Rows:        make([]RowView, 0, len(st.Items)),
		SubmitLabel: SubmitLabelCreate,
		EditingID:   st.EditingID(),
		Error:       errorText(st.Err),
		Loaded:      st.Loaded,
	}
	if st.Editing != nil {
		p.SubmitLabel = SubmitLabelUpdate
	}
	for _, g := range st.Items {
		p.Rows = append(p.Rows, newRow(g, g.ID == p.EditingID))
	}
	return p
}

func newRow(g entity.BoardGame, editing bool) RowView {
	return RowView{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Quantity:    strconv.Itoa(g.Quantity),
		Price:       FormatPrice(g.Price),
		Editing:     editing,
	}
}

// FormatPrice precio con dos decimales.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Views plantillas HTML ya parseadas, una por página (cada una con el layout común).
type Views struct {
	pages map[string]*template.Template
}

// NewViews parsea las plantillas embebidas.
func NewViews() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template)}
	for _, page := range []string{"home", "inventory", "report"} {
		t, err := template.New(page).ParseFS(templateFS, "templates/layout.html", "templates/header.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("plantilla %s: %w", page, err)
		}
		v.pages[page] = t
	}
	return v, nil
}

// Render ejecuta la plantilla de la página.
func (v *Views) Render(page string, data any) ([]byte, error) {
	t, ok := v.pages[page]
	if !ok {
		return nil, fmt.Errorf("plantilla %s no existe", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("renderizar %s: %w", page, err)
	}
	return buf.Bytes(), nil
}
