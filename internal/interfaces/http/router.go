package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/pkg/jwt"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BoardGameUC *usecase.BoardGameUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	games := api.Group("/board-games")
	h := NewBoardGameHandler(deps.BoardGameUC)
	games.Get("/", RequireScope(jwt.ScopeRead), h.List)
	games.Get("/:id", RequireScope(jwt.ScopeRead), h.GetByID)
	games.Post("/", RequireScope(jwt.ScopeWrite), h.Create)
	games.Put("/:id", RequireScope(jwt.ScopeWrite), h.Update)
	games.Delete("/:id", RequireScope(jwt.ScopeWrite), h.Delete)
}

// NewApp construye la aplicación Fiber del API con recover, log de peticiones, /health y las rutas.
// cmd/api la extiende con Swagger; los tests la usan tal cual.
func NewApp(appName string, log *logger.Logger, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		UnescapePath: true,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	})

	Router(app, deps)
	return app
}
