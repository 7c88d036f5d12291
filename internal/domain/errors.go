package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Errores del gestor de inventario (estado de edición en la interfaz).
	ErrEditInProgress  = errors.New("ya hay otro juego en edición")
	ErrNotEditing      = errors.New("el juego no está en edición")
	ErrUnknownField    = errors.New("campo no editable")
	ErrRequestInFlight = errors.New("hay una petición en curso")
)
