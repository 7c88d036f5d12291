// Package web es la interfaz HTML del inventario: encabezado de navegación, tabla
// editable, formulario de alta/edición y página de reporte. Todo el estado vive en
// un inventory.Manager por proceso.
package web

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/boardgame-tracker/internal/application/inventory"
	"github.com/jhoicas/boardgame-tracker/internal/application/report"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	apphttp "github.com/jhoicas/boardgame-tracker/internal/interfaces/http"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// Campos que acepta la ruta de guardado, en el orden en que se aplican.
var saveFields = []string{
	inventory.FieldName,
	inventory.FieldDescription,
	inventory.FieldQuantity,
	inventory.FieldPrice,
}

// HandlerConfig dependencias del handler web.
type HandlerConfig struct {
	Brand         string
	Manager       *inventory.Manager
	Reports       *report.UseCase
	Views         *Views
	Log           *logger.Logger
	SettleTimeout time.Duration // límite para confirmar en el API un borrado en segundo plano
}

// Handler rutas de la interfaz web.
type Handler struct {
	brand         string
	manager       *inventory.Manager
	reports       *report.UseCase
	views         *Views
	log           *logger.Logger
	settleTimeout time.Duration

	pending sync.WaitGroup
}

// NewHandler construye el handler.
func NewHandler(cfg HandlerConfig) *Handler {
	timeout := cfg.SettleTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handler{
		brand:         cfg.Brand,
		manager:       cfg.Manager,
		reports:       cfg.Reports,
		views:         cfg.Views,
		log:           cfg.Log.Named("web"),
		settleTimeout: timeout,
	}
}

// Register monta las rutas en la app.
func (h *Handler) Register(app fiber.Router) {
	app.Get(PathHome, h.Home)

	inv := app.Group(PathManageInventory)
	inv.Get("/", h.Inventory)
	inv.Post("/", h.Submit)
	inv.Post("/:id/edit", h.StartEdit)
	inv.Post("/:id/field", h.EditField)
	inv.Post("/:id/save", h.Save)
	inv.Post("/:id/delete", h.Delete)

	rep := app.Group(PathGenerateReport)
	rep.Get("/", h.Report)
	rep.Get("/download", h.Download)
}

// Wait espera a que terminen los borrados pendientes de confirmar.
func (h *Handler) Wait() {
	h.pending.Wait()
}

// Home GET /
func (h *Handler) Home(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "home", HomePage{
		Header: h.header(PathHome),
		Brand:  h.brand,
	})
}

// Inventory GET /manage-inventory. La primera visita carga la colección desde el API.
func (h *Handler) Inventory(c *fiber.Ctx) error {
	if !h.manager.Snapshot().Loaded {
		// el error queda en el estado y se muestra en la página
		_ = h.manager.LoadAll(c.UserContext())
	}
	page := NewInventoryPage(h.header(PathManageInventory), h.manager.Snapshot())
	return h.render(c, fiber.StatusOK, "inventory", page)
}

// Submit POST /manage-inventory. Un segundo envío mientras el primero sigue en curso
// responde 409; el gestor es quien lo detecta.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var form inventory.FormValues
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	if err := h.manager.Submit(c.UserContext(), form); errors.Is(err, domain.ErrRequestInFlight) {
		return c.Status(fiber.StatusConflict).SendString(err.Error())
	}
	return h.backToInventory(c)
}

// StartEdit POST /manage-inventory/:id/edit
func (h *Handler) StartEdit(c *fiber.Ctx) error {
	_ = h.manager.StartEdit(c.UserContext(), c.Params("id"))
	return h.backToInventory(c)
}

// EditField POST /manage-inventory/:id/field (campos field y value)
func (h *Handler) EditField(c *fiber.Ctx) error {
	_ = h.manager.EditField(c.Params("id"), c.FormValue("field"), c.FormValue("value"))
	return h.backToInventory(c)
}

// Save POST /manage-inventory/:id/save. Aplica los campos enviados y persiste la edición.
func (h *Handler) Save(c *fiber.Ctx) error {
	id := c.Params("id")
	args := c.Request().PostArgs()
	for _, field := range saveFields {
		if !args.Has(field) {
			continue
		}
		if err := h.manager.EditField(id, field, string(args.Peek(field))); err != nil {
			return h.backToInventory(c)
		}
	}
	_ = h.manager.Save(c.UserContext(), id)
	return h.backToInventory(c)
}

// Delete POST /manage-inventory/:id/delete. El juego desaparece de la tabla de inmediato;
// la confirmación del API corre en segundo plano y un fallo lo repone.
func (h *Handler) Delete(c *fiber.Ctx) error {
	pending, err := h.manager.BeginDelete(c.Params("id"))
	if err != nil {
		return h.backToInventory(c)
	}

	h.pending.Add(1)
	go func() {
		defer h.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), h.settleTimeout)
		defer cancel()
		if res := pending.Settle(ctx); res.RolledBack {
			h.log.Warn().Str("id", res.ID).Msg("borrado revertido")
		}
	}()
	return h.backToInventory(c)
}

// Report GET /generate-report
func (h *Handler) Report(c *fiber.Ctx) error {
	page := ReportPage{Header: h.header(PathGenerateReport), Formats: h.reports.Formats()}
	summary, err := h.reports.Build(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Msg("armar reporte")
		page.Error = err.Error()
	}
	page.Summary = summary
	return h.render(c, fiber.StatusOK, "report", page)
}

// Download GET /generate-report/download?format=pdf|xml
func (h *Handler) Download(c *fiber.Ctx) error {
	doc, err := h.reports.Generate(c.UserContext(), c.Query("format", "pdf"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		h.log.Error().Err(err).Msg("generar reporte")
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}
	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))
	return c.Send(doc.Body)
}

func (h *Handler) header(current string) HeaderView {
	return NewHeader(h.brand, current, DefaultNavLinks)
}

func (h *Handler) render(c *fiber.Ctx, status int, page string, data any) error {
	body, err := h.views.Render(page, data)
	if err != nil {
		h.log.Error().Err(err).Str("page", page).Msg("renderizar página")
		return fiber.NewError(fiber.StatusInternalServerError, "error al renderizar")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(body)
}

func (h *Handler) backToInventory(c *fiber.Ctx) error {
	return c.Redirect(PathManageInventory, fiber.StatusSeeOther)
}

// NewApp construye la app Fiber de la interfaz web.
func NewApp(appName string, log *logger.Logger, h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		UnescapePath: true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(apphttp.RequestLogger(log))
	h.Register(app)
	return app
}
