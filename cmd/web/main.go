package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/boardgame-tracker/internal/application/inventory"
	"github.com/jhoicas/boardgame-tracker/internal/application/report"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/apiclient"
	inforeport "github.com/jhoicas/boardgame-tracker/internal/infrastructure/report"
	"github.com/jhoicas/boardgame-tracker/internal/interfaces/web"
	"github.com/jhoicas/boardgame-tracker/pkg/config"
	"github.com/jhoicas/boardgame-tracker/pkg/jwt"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando interfaz web")

	token := cfg.API.Token
	if token == "" {
		token, err = jwt.Generate(cfg.JWT.Secret, "web", cfg.JWT.Issuer, cfg.JWT.Expiration, jwt.ScopeWrite)
		if err != nil {
			log.Fatal().Err(err).Msg("firmar token de servicio")
		}
	}
	client := apiclient.New(cfg.API.BaseURL, token, cfg.API.Timeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := client.Health(ctx); err != nil {
		log.Warn().Err(err).Msg("API no disponible; se reintentará al abrir el inventario")
	}
	cancel()

	manager := inventory.NewManager(client, log)
	ctx, cancel = context.WithTimeout(context.Background(), cfg.API.Timeout)
	if err := manager.LoadAll(ctx); err != nil {
		log.Warn().Err(err).Msg("carga inicial del inventario")
	}
	cancel()

	reports := report.NewUseCase(client, cfg.Report.LowStockThreshold,
		inforeport.NewMarotoPDFRenderer(cfg.App.Name),
		inforeport.NewXMLRenderer(),
	)

	views, err := web.NewViews()
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}
	handler := web.NewHandler(web.HandlerConfig{
		Brand:         cfg.App.Name,
		Manager:       manager,
		Reports:       reports,
		Views:         views,
		Log:           log,
		SettleTimeout: cfg.API.Timeout,
	})
	app := web.NewApp(cfg.App.Name, log, handler)

	go func() {
		if err := app.Listen(cfg.Web.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor web finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	// borrados optimistas aún sin confirmar en el API
	handler.Wait()

	log.Info().Msg("interfaz web detenida")
}
