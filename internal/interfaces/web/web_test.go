package web_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/boardgame-tracker/internal/application/inventory"
	"github.com/jhoicas/boardgame-tracker/internal/application/report"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	inforeport "github.com/jhoicas/boardgame-tracker/internal/infrastructure/report"
	"github.com/jhoicas/boardgame-tracker/internal/interfaces/web"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// stubAPI: ports.InventoryAPI en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubAPI struct {
	mu        sync.Mutex
	games     []entity.BoardGame
	lists     int
	deleteErr error

	// createGate, si no es nil, bloquea CreateOne hasta que se cierre; createEntered avisa la entrada.
	createGate    chan struct{}
	createEntered chan struct{}
}

func (s *stubAPI) ListAll(context.Context) ([]entity.BoardGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	return append([]entity.BoardGame(nil), s.games...), nil
}

func (s *stubAPI) GetOne(_ context.Context, id string) (*entity.BoardGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.ID == id {
			cp := g
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubAPI) CreateOne(_ context.Context, g entity.BoardGame) (*entity.BoardGame, error) {
	if s.createGate != nil {
		close(s.createEntered)
		<-s.createGate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = append(s.games, g)
	return &g, nil
}

func (s *stubAPI) UpdateOne(_ context.Context, g entity.BoardGame) (*entity.BoardGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.games {
		if s.games[i].ID == g.ID {
			s.games[i] = g
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubAPI) DeleteOne(_ context.Context, id string) (*entity.BoardGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return nil, s.deleteErr
	}
	for i, g := range s.games {
		if g.ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			return &g, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubAPI) game(id string) (entity.BoardGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.ID == id {
			return g, true
		}
	}
	return entity.BoardGame{}, false
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	api     *stubAPI
	manager *inventory.Manager
	handler *web.Handler
	app     *fiber.App
}

func newFixture(t *testing.T, games ...entity.BoardGame) *fixture {
	t.Helper()
	api := &stubAPI{games: games}
	views, err := web.NewViews()
	require.NoError(t, err)

	mgr := inventory.NewManager(api, logger.Nop())
	reports := report.NewUseCase(api, 1, inforeport.NewXMLRenderer(), inforeport.NewMarotoPDFRenderer("Inventario"))
	h := web.NewHandler(web.HandlerConfig{
		Brand:   "Board Game Tracker",
		Manager: mgr,
		Reports: reports,
		Views:   views,
		Log:     logger.Nop(),
	})
	return &fixture{api: api, manager: mgr, handler: h, app: web.NewApp("web-test", logger.Nop(), h)}
}

func (f *fixture) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (f *fixture) post(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func assertRedirect(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, web.PathManageInventory, resp.Header.Get("Location"))
}

var catan = entity.BoardGame{ID: "1", Name: "Catan", Description: "Colonos", Quantity: 3, Price: 39.99}

// ──────────────────────────────────────────────────────────────────────────────
// Encabezado y view models
// ──────────────────────────────────────────────────────────────────────────────

func TestNewHeader_MarcaEnlaceActivo(t *testing.T) {
	h := web.NewHeader("Tracker", web.PathGenerateReport, web.DefaultNavLinks)

	assert.Equal(t, "/", h.LogoPath)
	require.Len(t, h.Links, 2)
	assert.Equal(t, "Manage Inventory", h.Links[0].Label)
	assert.Equal(t, "/manage-inventory", h.Links[0].Path)
	assert.False(t, h.Links[0].Active)
	assert.Equal(t, "Generate Report", h.Links[1].Label)
	assert.True(t, h.Links[1].Active)
}

func TestNewInventoryPage_EtiquetasYFormato(t *testing.T) {
	st := inventory.State{Items: []entity.BoardGame{catan, {ID: "2", Name: "Azul", Price: 5}}}
	page := web.NewInventoryPage(web.HeaderView{}, st)
	assert.Equal(t, web.SubmitLabelCreate, page.SubmitLabel)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "39.99", page.Rows[0].Price)
	assert.Equal(t, "5.00", page.Rows[1].Price)
	assert.Equal(t, "3", page.Rows[0].Quantity)

	editing := catan
	st.Editing = &editing
	st.Err = errors.New("boom")
	page = web.NewInventoryPage(web.HeaderView{}, st)
	assert.Equal(t, web.SubmitLabelUpdate, page.SubmitLabel)
	assert.True(t, page.Rows[0].Editing)
	assert.False(t, page.Rows[1].Editing)
	assert.Equal(t, "boom", page.Error)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00", web.FormatPrice(0))
	assert.Equal(t, "12.50", web.FormatPrice(12.5))
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestHome_MuestraEncabezado(t *testing.T) {
	f := newFixture(t)
	resp, body := f.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `href="/manage-inventory"`)
	assert.Contains(t, body, `href="/generate-report"`)
	assert.Contains(t, body, "Manage Inventory")
	assert.Contains(t, body, "Generate Report")
}

func TestInventory_CargaSoloEnLaPrimeraVisita(t *testing.T) {
	f := newFixture(t, catan)

	resp, body := f.get(t, web.PathManageInventory)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Catan")
	assert.Contains(t, body, "39.99")
	assert.Contains(t, body, web.SubmitLabelCreate)

	f.get(t, web.PathManageInventory)
	assert.Equal(t, 1, f.api.lists)
}

func TestSubmit_CreaYRedirige(t *testing.T) {
	f := newFixture(t)
	resp := f.post(t, web.PathManageInventory, url.Values{
		"id": {"7"}, "name": {"Azul"}, "description": {"Azulejos"}, "quantity": {"4"}, "price": {"29.5"},
	})
	assertRedirect(t, resp)

	g, ok := f.api.game("7")
	require.True(t, ok)
	assert.Equal(t, 4, g.Quantity)

	_, body := f.get(t, web.PathManageInventory)
	assert.Contains(t, body, "Azul")
	assert.Contains(t, body, "29.50")
}

func TestSubmit_CampoVacio_MuestraError(t *testing.T) {
	f := newFixture(t)
	resp := f.post(t, web.PathManageInventory, url.Values{"id": {"7"}, "name": {"Azul"}})
	assertRedirect(t, resp)

	_, ok := f.api.game("7")
	assert.False(t, ok)
	_, body := f.get(t, web.PathManageInventory)
	assert.Contains(t, body, `role="alert"`)
}

func TestEditYSave_PersisteCamposEnviados(t *testing.T) {
	f := newFixture(t, catan)
	f.get(t, web.PathManageInventory)

	assertRedirect(t, f.post(t, "/manage-inventory/1/edit", nil))
	_, body := f.get(t, web.PathManageInventory)
	assert.Contains(t, body, web.SubmitLabelUpdate)
	assert.Contains(t, body, "/manage-inventory/1/save")

	assertRedirect(t, f.post(t, "/manage-inventory/1/save", url.Values{"quantity": {"9"}, "price": {"41"}}))

	g, _ := f.api.game("1")
	assert.Equal(t, 9, g.Quantity)
	assert.InDelta(t, 41.0, g.Price, 1e-9)
	assert.Equal(t, "Catan", g.Name)
	assert.Empty(t, f.manager.Snapshot().EditingID())
}

func TestEditField_ValorInvalido_NoModifica(t *testing.T) {
	f := newFixture(t, catan)
	f.get(t, web.PathManageInventory)

	assertRedirect(t, f.post(t, "/manage-inventory/1/field", url.Values{"field": {"quantity"}, "value": {"muchos"}}))

	st := f.manager.Snapshot()
	assert.Equal(t, 3, st.Items[0].Quantity)
	assert.ErrorIs(t, st.Err, domain.ErrInvalidInput)
}

func TestDelete_OptimistaConfirmado(t *testing.T) {
	f := newFixture(t, catan)
	f.get(t, web.PathManageInventory)

	assertRedirect(t, f.post(t, "/manage-inventory/1/delete", nil))
	assert.Empty(t, f.manager.Snapshot().Items)

	f.handler.Wait()
	_, ok := f.api.game("1")
	assert.False(t, ok)
	assert.NoError(t, f.manager.Snapshot().Err)
}

func TestDelete_FallaDelAPI_Revierte(t *testing.T) {
	f := newFixture(t, catan)
	f.api.deleteErr = fmt.Errorf("%w: sin permisos", domain.ErrUnauthorized)
	f.get(t, web.PathManageInventory)

	assertRedirect(t, f.post(t, "/manage-inventory/1/delete", nil))
	f.handler.Wait()

	st := f.manager.Snapshot()
	require.Len(t, st.Items, 1)
	assert.Equal(t, "1", st.Items[0].ID)
	assert.ErrorIs(t, st.Err, domain.ErrUnauthorized)
}

func TestReport_PaginaYDescarga(t *testing.T) {
	f := newFixture(t, catan, entity.BoardGame{ID: "2", Name: "Azul", Description: "x", Quantity: 1, Price: 10})

	resp, body := f.get(t, web.PathGenerateReport)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "129.97")
	assert.Contains(t, body, "format=pdf")
	assert.Contains(t, body, "format=xml")

	resp, body = f.get(t, "/generate-report/download?format=xml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xml")
	assert.Contains(t, body, "<InventoryReport")

	resp, _ = f.get(t, "/generate-report/download?format=csv")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRutas_IDConEspacio(t *testing.T) {
	f := newFixture(t, entity.BoardGame{ID: "Catan 1", Name: "Catan", Description: "Colonos", Quantity: 2, Price: 10})
	_, body := f.get(t, web.PathManageInventory)
	assert.Contains(t, body, "/manage-inventory/Catan%201/edit")

	assertRedirect(t, f.post(t, "/manage-inventory/Catan%201/edit", nil))
	st := f.manager.Snapshot()
	assert.Equal(t, "Catan 1", st.EditingID())
	assert.NoError(t, st.Err)

	assertRedirect(t, f.post(t, "/manage-inventory/Catan%201/save", url.Values{"quantity": {"4"}}))
	g, _ := f.api.game("Catan 1")
	assert.Equal(t, 4, g.Quantity)

	assertRedirect(t, f.post(t, "/manage-inventory/Catan%201/delete", nil))
	f.handler.Wait()
	assert.Empty(t, f.manager.Snapshot().Items)
	_, ok := f.api.game("Catan 1")
	assert.False(t, ok)
	assert.NoError(t, f.manager.Snapshot().Err)
}

func TestSubmit_EnvioEnCurso_Retorna409(t *testing.T) {
	f := newFixture(t)
	f.api.createGate = make(chan struct{})
	f.api.createEntered = make(chan struct{})
	form := url.Values{"id": {"7"}, "name": {"Azul"}, "description": {"x"}, "quantity": {"1"}, "price": {"2"}}

	done := make(chan *http.Response, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, web.PathManageInventory, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, _ := f.app.Test(req, -1)
		done <- resp
	}()
	<-f.api.createEntered

	resp := f.post(t, web.PathManageInventory, form)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	close(f.api.createGate)
	first := <-done
	require.NotNil(t, first)
	assert.Equal(t, http.StatusSeeOther, first.StatusCode)
	_, ok := f.api.game("7")
	assert.True(t, ok)
}
