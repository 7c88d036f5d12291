// Package apiclient implementa ports.InventoryAPI contra el API HTTP de inventario (cmd/api).
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/boardgame-tracker/internal/application/dto"
	"github.com/jhoicas/boardgame-tracker/internal/application/ports"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
	"github.com/jhoicas/boardgame-tracker/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa InventoryAPI.
var _ ports.InventoryAPI = (*Client)(nil)

const boardGamesPath = "/api/board-games"

// Client adaptador HTTP del API de inventario. Usa net/http con timeout y Bearer Token.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New construye el cliente. baseURL sin barra final (ej. http://localhost:8080).
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Health consulta /health; útil al arrancar la web.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) ListAll(ctx context.Context) ([]entity.BoardGame, error) {
	var out dto.BoardGameListResponse
	if err := c.do(ctx, http.MethodGet, boardGamesPath, nil, &out); err != nil {
		return nil, fmt.Errorf("listar juegos: %w", err)
	}
	games := make([]entity.BoardGame, 0, len(out.Items))
	for _, item := range out.Items {
		games = append(games, toEntity(item))
	}
	return games, nil
}

func (c *Client) GetOne(ctx context.Context, id string) (*entity.BoardGame, error) {
	var out dto.BoardGameResponse
	if err := c.do(ctx, http.MethodGet, gamePath(id), nil, &out); err != nil {
		return nil, fmt.Errorf("obtener juego %s: %w", id, err)
	}
	game := toEntity(out)
	return &game, nil
}

func (c *Client) CreateOne(ctx context.Context, game entity.BoardGame) (*entity.BoardGame, error) {
	var out dto.BoardGameResponse
	if err := c.do(ctx, http.MethodPost, boardGamesPath, toRequest(game), &out); err != nil {
		return nil, fmt.Errorf("crear juego %s: %w", game.ID, err)
	}
	created := toEntity(out)
	return &created, nil
}

func (c *Client) UpdateOne(ctx context.Context, game entity.BoardGame) (*entity.BoardGame, error) {
	var out dto.BoardGameResponse
	if err := c.do(ctx, http.MethodPut, gamePath(game.ID), toRequest(game), &out); err != nil {
		return nil, fmt.Errorf("actualizar juego %s: %w", game.ID, err)
	}
	updated := toEntity(out)
	return &updated, nil
}

func (c *Client) DeleteOne(ctx context.Context, id string) (*entity.BoardGame, error) {
	var out dto.BoardGameResponse
	if err := c.do(ctx, http.MethodDelete, gamePath(id), nil, &out); err != nil {
		return nil, fmt.Errorf("eliminar juego %s: %w", id, err)
	}
	deleted := toEntity(out)
	return &deleted, nil
}

// do ejecuta la petición, decodifica la respuesta en out (si no es nil) y traduce los códigos de error.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// statusError mapea el código HTTP a un error de dominio conservando el mensaje del API.
func statusError(status int, raw []byte) error {
	msg := strings.TrimSpace(string(raw))
	var errResp dto.ErrorResponse
	if json.Unmarshal(raw, &errResp) == nil && errResp.Message != "" {
		msg = errResp.Message
	}
	var base error
	switch status {
	case http.StatusNotFound:
		base = domain.ErrNotFound
	case http.StatusConflict:
		base = domain.ErrDuplicate
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		base = domain.ErrInvalidInput
	case http.StatusUnauthorized:
		base = domain.ErrUnauthorized
	case http.StatusForbidden:
		base = domain.ErrForbidden
	default:
		base = errors.New("error del API")
	}
	return fmt.Errorf("%w (HTTP %d): %s", base, status, msg)
}

func gamePath(id string) string {
	return boardGamesPath + "/" + url.PathEscape(id)
}

func toRequest(g entity.BoardGame) dto.BoardGameRequest {
	return dto.BoardGameRequest{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Quantity:    g.Quantity,
		Price:       g.Price,
	}
}

func toEntity(r dto.BoardGameResponse) entity.BoardGame {
	return entity.BoardGame{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		Price:       r.Price,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
