package postgres

import (
	"context"
	"fmt"
)

const boardGamesDDL = `
CREATE TABLE IF NOT EXISTS board_games (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL CHECK (name <> ''),
	description TEXT NOT NULL,
	quantity    INTEGER NOT NULL CHECK (quantity >= 0),
	price       NUMERIC(12,2) NOT NULL CHECK (price >= 0),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema crea la tabla board_games si no existe. Idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, boardGamesDDL); err != nil {
		return fmt.Errorf("crear tabla board_games: %w", err)
	}
	return nil
}
