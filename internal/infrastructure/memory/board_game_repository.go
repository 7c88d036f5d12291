// Package memory implementa los puertos de persistencia en memoria del proceso.
// Útil para desarrollo local sin PostgreSQL (STORAGE_DRIVER=memory) y para tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/internal/domain/repository"
)

var _ repository.BoardGameRepository = (*BoardGameRepo)(nil)

// BoardGameRepo guarda copias de los juegos; nunca expone punteros internos.
type BoardGameRepo struct {
	mu    sync.RWMutex
	games map[string]entity.BoardGame
	seq   map[string]int64
	next  int64
}

// NewBoardGameRepository construye un repositorio vacío.
func NewBoardGameRepository() *BoardGameRepo {
	return &BoardGameRepo{
		games: make(map[string]entity.BoardGame),
		seq:   make(map[string]int64),
	}
}

func (r *BoardGameRepo) Create(_ context.Context, game *entity.BoardGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[game.ID]; ok {
		return domain.ErrDuplicate
	}
	r.games[game.ID] = *game
	r.next++
	r.seq[game.ID] = r.next
	return nil
}

func (r *BoardGameRepo) GetByID(_ context.Context, id string) (*entity.BoardGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *BoardGameRepo) Update(_ context.Context, game *entity.BoardGame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.games[game.ID]
	if !ok {
		return domain.ErrNotFound
	}
	updated := *game
	updated.CreatedAt = current.CreatedAt
	r.games[game.ID] = updated
	return nil
}

// List devuelve los juegos en orden de inserción.
func (r *BoardGameRepo) List(_ context.Context) ([]*entity.BoardGame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.BoardGame, 0, len(r.games))
	for _, g := range r.games {
		g := g
		list = append(list, &g)
	}
	sort.Slice(list, func(i, j int) bool {
		return r.seq[list[i].ID] < r.seq[list[j].ID]
	})
	return list, nil
}

func (r *BoardGameRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.games, id)
	delete(r.seq, id)
	return nil
}
