package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/jhoicas/boardgame-tracker/docs"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/domain/repository"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/boardgame-tracker/internal/interfaces/http"
	"github.com/jhoicas/boardgame-tracker/pkg/config"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

// @title			Board Game Inventory API
// @version		1.0
// @description	CRUD de juegos de mesa consumido por la interfaz de inventario.
// @BasePath		/
// @securityDefinitions.apikey	Bearer
// @in							header
// @name						Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando API")

	ctx := context.Background()

	var repo repository.BoardGameRepository
	switch cfg.Storage.Driver {
	case "memory":
		repo = memory.NewBoardGameRepository()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		repo = postgres.NewBoardGameRepository(pool)
	}

	app := httpRouter.NewApp(cfg.App.Name, log, httpRouter.RouterDeps{
		BoardGameUC: usecase.NewBoardGameUseCase(repo),
		JWTSecret:   cfg.JWT.Secret,
	})

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Board Game Inventory API",
	}))

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("API detenida")
}
