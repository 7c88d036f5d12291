package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/boardgame-tracker/internal/application/dto"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/domain"
)

// BoardGameHandler maneja las peticiones HTTP para BoardGame (protegido).
type BoardGameHandler struct {
	uc *usecase.BoardGameUseCase
}

// NewBoardGameHandler construye el handler.
func NewBoardGameHandler(uc *usecase.BoardGameUseCase) *BoardGameHandler {
	return &BoardGameHandler{uc: uc}
}

// List godoc
// @Summary      Listar juegos de mesa (colección completa)
// @Tags         board-games
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BoardGameListResponse
// @Router       /api/board-games [get]
func (h *BoardGameHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener juego por ID
// @Tags         board-games
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del juego"
// @Success      200  {object}  dto.BoardGameResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/board-games/{id} [get]
func (h *BoardGameHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear juego de mesa (el cliente provee el id)
// @Tags         board-games
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BoardGameRequest  true  "Datos del juego"
// @Success      201   {object}  dto.BoardGameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/board-games [post]
func (h *BoardGameHandler) Create(c *fiber.Ctx) error {
	var in dto.BoardGameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar juego de mesa
// @Tags         board-games
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del juego"
// @Param        body  body  dto.BoardGameRequest  true  "Registro completo"
// @Success      200   {object}  dto.BoardGameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/board-games/{id} [put]
func (h *BoardGameHandler) Update(c *fiber.Ctx) error {
	var in dto.BoardGameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar juego de mesa
// @Tags         board-games
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del juego"
// @Success      200  {object}  dto.BoardGameResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/board-games/{id} [delete]
func (h *BoardGameHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "juego no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un juego con ese id"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
