package web

// NavLink un enlace de la barra de navegación.
type NavLink struct {
	Label string
	Path  string
}

// Rutas de la interfaz.
const (
	PathHome            = "/"
	PathManageInventory = "/manage-inventory"
	PathGenerateReport  = "/generate-report"
)

// DefaultNavLinks enlaces fijos del encabezado.
var DefaultNavLinks = []NavLink{
	{Label: "Manage Inventory", Path: PathManageInventory},
	{Label: "Generate Report", Path: PathGenerateReport},
}

// HeaderView datos que renderiza el encabezado.
type HeaderView struct {
	LogoPath string
	LogoAlt  string
	Links    []NavLinkView
}

// NavLinkView enlace con marca de activo según la ruta actual.
type NavLinkView struct {
	NavLink
	Active bool
}

// NewHeader mapea la lista fija de enlaces al encabezado para la ruta actual.
func NewHeader(brand, currentPath string, links []NavLink) HeaderView {
	h := HeaderView{LogoPath: PathHome, LogoAlt: brand, Links: make([]NavLinkView, 0, len(links))}
	for _, l := range links {
		h.Links = append(h.Links, NavLinkView{NavLink: l, Active: l.Path == currentPath})
	}
	return h
}
