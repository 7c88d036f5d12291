// Package inventory contiene el gestor de inventario de la interfaz web: la lista de
// juegos cacheada desde el API, el cursor de edición (a lo sumo un juego en edición)
// y las operaciones que traducen acciones del usuario en llamadas al API.
//
// La lista local es una caché del estado del servidor. Crear y actualizar siempre
// terminan con una recarga completa; eliminar quita el juego localmente antes de
// que responda el API y lo repone si la llamada falla.
package inventory

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jhoicas/boardgame-tracker/internal/application/ports"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// Campos editables en línea desde la tabla.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
)

// State es una copia del estado del gestor para renderizar.
type State struct {
	Items      []entity.BoardGame
	Editing    *entity.BoardGame // copia autoritativa traída por StartEdit; nil si no hay edición
	Loaded     bool
	Submitting bool
	Err        error
}

// EditingID devuelve el id del cursor de edición o "".
func (s State) EditingID() string {
	if s.Editing == nil {
		return ""
	}
	return s.Editing.ID
}

// Manager es el contenedor de estado del inventario. Seguro para uso concurrente:
// el mutex nunca se mantiene durante una llamada al API.
type Manager struct {
	api ports.InventoryAPI
	log *logger.Logger

	mu         sync.Mutex
	items      []entity.BoardGame
	editing    *entity.BoardGame
	loaded     bool
	submitting bool
	lastErr    error
}

// NewManager construye el gestor con el cliente del API.
func NewManager(api ports.InventoryAPI, log *logger.Logger) *Manager {
	return &Manager{api: api, log: log.Named("inventory")}
}

// Snapshot devuelve una copia del estado actual.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	st := State{
		Items:      append([]entity.BoardGame(nil), m.items...),
		Loaded:     m.loaded,
		Submitting: m.submitting,
		Err:        m.lastErr,
	}
	if m.editing != nil {
		cp := *m.editing
		st.Editing = &cp
	}
	return st
}

// LoadAll trae la colección completa y reemplaza el estado local.
// Si falla se conserva la lista anterior y el error queda registrado.
func (m *Manager) LoadAll(ctx context.Context) error {
	games, err := m.api.ListAll(ctx)
	if err != nil {
		m.fail("cargar inventario", err)
		return err
	}
	m.mu.Lock()
	m.items = games
	m.loaded = true
	m.lastErr = nil
	m.mu.Unlock()
	return nil
}

// Submit procesa el formulario: con cursor de edición actualiza el juego del cursor,
// sin cursor crea uno nuevo. Escrito el juego, el cursor se limpia aunque la recarga falle.
// Se rechaza con domain.ErrRequestInFlight si otro envío sigue en curso.
func (m *Manager) Submit(ctx context.Context, form FormValues) error {
	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return domain.ErrRequestInFlight
	}
	m.submitting = true
	var cursorID string
	if m.editing != nil {
		cursorID = m.editing.ID
	}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.submitting = false
		m.mu.Unlock()
	}()

	game, err := form.Parse()
	if err != nil {
		m.fail("validar formulario", err)
		return err
	}

	if cursorID != "" {
		game.ID = cursorID
		err = m.Update(ctx, game)
	} else {
		err = m.Create(ctx, game)
	}
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.editing = nil
	m.mu.Unlock()
	return m.LoadAll(ctx)
}

// Create envía el juego nuevo al API. No comprueba ids duplicados localmente.
func (m *Manager) Create(ctx context.Context, game entity.BoardGame) error {
	if _, err := m.api.CreateOne(ctx, game); err != nil {
		m.fail("crear juego", err)
		return err
	}
	m.log.Info().Str("id", game.ID).Msg("juego creado")
	return nil
}

// Update envía el registro completo (no un patch) direccionado por id.
func (m *Manager) Update(ctx context.Context, game entity.BoardGame) error {
	if _, err := m.api.UpdateOne(ctx, game); err != nil {
		m.fail("actualizar juego", err)
		return err
	}
	m.log.Info().Str("id", game.ID).Msg("juego actualizado")
	return nil
}

// StartEdit trae el juego desde el API (nunca desde la caché local) y lo fija como cursor.
// Si otro juego está en edición devuelve domain.ErrEditInProgress; repetirlo sobre el
// mismo id refresca el cursor.
func (m *Manager) StartEdit(ctx context.Context, id string) error {
	if err := m.checkCursorFree(id); err != nil {
		m.fail("abrir edición", err)
		return err
	}
	game, err := m.api.GetOne(ctx, id)
	if err != nil {
		m.fail("abrir edición", err)
		return err
	}

	m.mu.Lock()
	// Otro StartEdit pudo ganar la carrera mientras se esperaba al API.
	if m.editing != nil && m.editing.ID != id {
		m.mu.Unlock()
		m.fail("abrir edición", domain.ErrEditInProgress)
		return domain.ErrEditInProgress
	}
	m.editing = game
	m.lastErr = nil
	m.mu.Unlock()
	return nil
}

func (m *Manager) checkCursorFree(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.editing != nil && m.editing.ID != id {
		return fmt.Errorf("%w: %s", domain.ErrEditInProgress, m.editing.ID)
	}
	return nil
}

// EditField modifica localmente un campo del juego con ese id, esté o no en edición.
// quantity se convierte a entero y price a float64; no se validan rangos.
// Un valor que no se puede convertir deja el juego intacto.
func (m *Manager) EditField(id, field, value string) error {
	apply, err := fieldSetter(field, value)
	if err != nil {
		m.fail("editar campo", err)
		return err
	}

	m.mu.Lock()
	if i := m.indexOf(id); i >= 0 {
		apply(&m.items[i])
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()
	err = fmt.Errorf("%w: juego %s", domain.ErrNotFound, id)
	m.fail("editar campo", err)
	return err
}

func fieldSetter(field, value string) (func(*entity.BoardGame), error) {
	switch field {
	case FieldName:
		return func(g *entity.BoardGame) { g.Name = value }, nil
	case FieldDescription:
		return func(g *entity.BoardGame) { g.Description = value }, nil
	case FieldQuantity:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: quantity %q no es un entero", domain.ErrInvalidInput, value)
		}
		return func(g *entity.BoardGame) { g.Quantity = n }, nil
	case FieldPrice:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: price %q no es un número", domain.ErrInvalidInput, value)
		}
		return func(g *entity.BoardGame) { g.Price = f }, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}
}

// CommitLocalEdit cierra la edición sin escribir en el API: los valores editados
// quedan solo en la caché local. Save es la variante que además persiste.
func (m *Manager) CommitLocalEdit(id string) error {
	m.mu.Lock()
	if m.editing == nil || m.editing.ID != id {
		m.mu.Unlock()
		err := fmt.Errorf("%w: %s", domain.ErrNotEditing, id)
		m.fail("cerrar edición", err)
		return err
	}
	m.editing = nil
	m.mu.Unlock()
	return nil
}

// PersistEdit envía al API los valores locales del juego en edición.
func (m *Manager) PersistEdit(ctx context.Context, id string) error {
	m.mu.Lock()
	var err error
	idx := m.indexOf(id)
	switch {
	case m.editing == nil || m.editing.ID != id:
		err = fmt.Errorf("%w: %s", domain.ErrNotEditing, id)
	case idx < 0:
		err = fmt.Errorf("%w: juego %s", domain.ErrNotFound, id)
	}
	if err != nil {
		m.mu.Unlock()
		m.fail("guardar edición", err)
		return err
	}
	local := m.items[idx]
	m.mu.Unlock()

	updated, err := m.api.UpdateOne(ctx, local)
	if err != nil {
		m.fail("guardar edición", err)
		return err
	}

	m.mu.Lock()
	if i := m.indexOf(id); i >= 0 {
		m.items[i] = *updated
	}
	m.lastErr = nil
	m.mu.Unlock()
	m.log.Info().Str("id", id).Msg("edición guardada")
	return nil
}

// Save persiste la edición y solo entonces cierra el cursor. Si el API falla
// el juego sigue en edición para poder reintentar.
func (m *Manager) Save(ctx context.Context, id string) error {
	if err := m.PersistEdit(ctx, id); err != nil {
		return err
	}
	return m.CommitLocalEdit(id)
}

// indexOf requiere m.mu tomado.
func (m *Manager) indexOf(id string) int {
	for i := range m.items {
		if m.items[i].ID == id {
			return i
		}
	}
	return -1
}

// fail registra el error para mostrarlo en la interfaz.
func (m *Manager) fail(op string, err error) {
	m.mu.Lock()
	m.lastErr = fmt.Errorf("%s: %w", op, err)
	m.mu.Unlock()
	m.log.Warn().Err(err).Str("op", op).Msg("operación de inventario fallida")
}
