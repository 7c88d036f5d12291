package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
	"github.com/jhoicas/boardgame-tracker/internal/domain/repository"
)

var _ repository.BoardGameRepository = (*BoardGameRepo)(nil)

const boardGameColumns = `id, name, description, quantity, price, created_at, updated_at`

// BoardGameRepo implementación del puerto BoardGameRepository sobre PostgreSQL (usable con pool o tx).
type BoardGameRepo struct {
	q Querier
}

// NewBoardGameRepository construye el adaptador de persistencia para juegos de mesa.
func NewBoardGameRepository(q Querier) *BoardGameRepo {
	return &BoardGameRepo{q: q}
}

// Create persiste un nuevo juego. El precio se guarda como NUMERIC(12,2).
func (r *BoardGameRepo) Create(ctx context.Context, game *entity.BoardGame) error {
	query := `
		INSERT INTO board_games (` + boardGameColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		game.ID, game.Name, game.Description, game.Quantity,
		priceToDecimal(game.Price), game.CreatedAt, game.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert board game: %w", err)
	}
	return nil
}

// GetByID obtiene un juego por ID.
func (r *BoardGameRepo) GetByID(ctx context.Context, id string) (*entity.BoardGame, error) {
	query := `SELECT ` + boardGameColumns + ` FROM board_games WHERE id = $1`
	game, err := scanBoardGame(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get board game: %w", err)
	}
	return game, nil
}

// Update reemplaza el registro completo (salvo created_at).
func (r *BoardGameRepo) Update(ctx context.Context, game *entity.BoardGame) error {
	query := `
		UPDATE board_games SET name = $2, description = $3, quantity = $4, price = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		game.ID, game.Name, game.Description, game.Quantity,
		priceToDecimal(game.Price), game.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update board game: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve todos los juegos ordenados por fecha de creación. Sin paginación.
func (r *BoardGameRepo) List(ctx context.Context) ([]*entity.BoardGame, error) {
	query := `SELECT ` + boardGameColumns + ` FROM board_games ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list board games: %w", err)
	}
	defer rows.Close()
	var list []*entity.BoardGame
	for rows.Next() {
		game, err := scanBoardGame(rows)
		if err != nil {
			return nil, fmt.Errorf("scan board game: %w", err)
		}
		list = append(list, game)
	}
	return list, rows.Err()
}

// Delete elimina un juego por ID.
func (r *BoardGameRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM board_games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete board game: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBoardGame(row pgx.Row) (*entity.BoardGame, error) {
	var (
		g     entity.BoardGame
		price decimal.Decimal
	)
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.Quantity, &price, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	g.Price = price.InexactFloat64()
	return &g, nil
}

// priceToDecimal redondea a centavos antes de enviar a la columna NUMERIC(12,2).
func priceToDecimal(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(2)
}
