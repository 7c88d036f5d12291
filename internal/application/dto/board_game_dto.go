package dto

import "time"

// BoardGameRequest entrada para crear o reemplazar un juego de mesa.
// En PUT el id de la ruta prevalece sobre el del cuerpo.
type BoardGameRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// BoardGameResponse salida de un juego de mesa.
type BoardGameResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BoardGameListResponse colección completa (sin paginación).
type BoardGameListResponse struct {
	Items []BoardGameResponse `json:"items"`
}
