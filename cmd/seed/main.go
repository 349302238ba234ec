// seed crea el esquema de documentos en PostgreSQL y siembra las cuentas de demostración
// y la entrada de origen de la bitácora. Es idempotente.
//
// Uso: go run ./cmd/seed
// Lee DATABASE_URL / DB_* igual que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Storefront-api/internal/application/bootstrap"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Storefront-api/internal/infrastructure/store"
	"github.com/jhoicas/Storefront-api/pkg/config"
	"github.com/jhoicas/Storefront-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Esquema: %v\n", err)
		os.Exit(1)
	}

	docs := postgres.NewDocumentStore(pool)
	if err := bootstrap.NewSeeder(store.NewTxRunner(docs), cfg.Admin.BcryptCost, log).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Sembrar datos: %v\n", err)
		os.Exit(1)
	}

	users, err := docs.Count(ctx, store.CollectionUsers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Contar usuarios: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Almacén listo: %d usuarios\n", users)
}
