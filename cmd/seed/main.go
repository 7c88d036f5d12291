// seed carga juegos de mesa desde un CSV (id,name,description,quantity,price)
// en el almacenamiento configurado del API. Los ids existentes se omiten.
//
// Uso: go run ./cmd/seed [-charset iso-8859-1] ruta/juegos.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/boardgame-tracker/internal/application/seed"
	"github.com/jhoicas/boardgame-tracker/internal/application/usecase"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/csvimport"
	"github.com/jhoicas/boardgame-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/boardgame-tracker/pkg/config"
	"github.com/jhoicas/boardgame-tracker/pkg/logger"
)

func main() {
	charset := flag.String("charset", csvimport.CharsetUTF8, "codificación del CSV (utf-8 | iso-8859-1)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed [-charset iso-8859-1] archivo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	// memory no persiste entre procesos: sembrar solo tiene sentido contra PostgreSQL
	if cfg.Storage.Driver != "postgres" {
		log.Fatal().Str("storage", cfg.Storage.Driver).Msg("seed requiere STORAGE_DRIVER=postgres")
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	games, err := csvimport.Read(f, *charset)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	uc := usecase.NewBoardGameUseCase(postgres.NewBoardGameRepository(pool))
	res, err := seed.NewSeeder(uc, log).Run(ctx, games)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar juegos")
	}
	fmt.Printf("OK: %d creados, %d omitidos\n", res.Created, res.Skipped)
}
