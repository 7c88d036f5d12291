package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// DeleteResult resultado de la confirmación de un borrado optimista.
type DeleteResult struct {
	ID         string
	Err        error
	RolledBack bool // el juego se repuso en la lista local porque el API falló
}

// OK indica si el API confirmó el borrado.
func (r DeleteResult) OK() bool { return r.Err == nil }

// PendingDelete es un borrado ya aplicado localmente y pendiente de confirmar en el API.
type PendingDelete struct {
	m       *Manager
	game    entity.BoardGame
	index   int
	settled bool
}

// Game devuelve el juego retirado de la lista.
func (p *PendingDelete) Game() entity.BoardGame { return p.game }

// BeginDelete retira el juego de la lista local de inmediato, antes de hablar con el API.
// Si el juego era el cursor de edición, la edición se cierra.
func (m *Manager) BeginDelete(id string) (*PendingDelete, error) {
	m.mu.Lock()
	idx := m.indexOf(id)
	if idx < 0 {
		m.mu.Unlock()
		err := fmt.Errorf("%w: juego %s", domain.ErrNotFound, id)
		m.fail("eliminar juego", err)
		return nil, err
	}
	game := m.items[idx]
	m.items = append(m.items[:idx:idx], m.items[idx+1:]...)
	if m.editing != nil && m.editing.ID == id {
		m.editing = nil
	}
	m.mu.Unlock()
	return &PendingDelete{m: m, game: game, index: idx}, nil
}

// Settle pide el borrado al API. Si falla, repone el juego en su posición anterior
// (salvo que una recarga ya lo haya traído de vuelta) y registra el error.
// Llamarlo más de una vez no repite la llamada.
func (p *PendingDelete) Settle(ctx context.Context) DeleteResult {
	res := DeleteResult{ID: p.game.ID}
	if p.settled {
		return res
	}
	p.settled = true

	if _, err := p.m.api.DeleteOne(ctx, p.game.ID); err != nil {
		res.Err = err
		res.RolledBack = p.rollback()
		p.m.fail("eliminar juego", err)
		return res
	}
	p.m.log.Info().Str("id", p.game.ID).Msg("juego eliminado")
	return res
}

func (p *PendingDelete) rollback() bool {
	m := p.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.indexOf(p.game.ID) >= 0 {
		return false
	}
	idx := p.index
	if idx > len(m.items) {
		idx = len(m.items)
	}
	m.items = append(m.items, entity.BoardGame{})
	copy(m.items[idx+1:], m.items[idx:])
	m.items[idx] = p.game
	return true
}

// Delete es BeginDelete seguido de Settle.
func (m *Manager) Delete(ctx context.Context, id string) DeleteResult {
	pending, err := m.BeginDelete(id)
	if err != nil {
		return DeleteResult{ID: id, Err: err}
	}
	return pending.Settle(ctx)
}
