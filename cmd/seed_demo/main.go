// seed_demo crea la empresa demo, un usuario por rol (credenciales DEMO_*) y una cartera de ejemplo.
// Idempotente: se puede ejecutar en cada despliegue.
//
// Uso: go run ./cmd/seed_demo
// Requiere STORE_URL y STORE_SERVICE_KEY (escribe sin contexto de tenant, salta RLS).
package main

import (
	"context"
	"time"

	"github.com/jhoicas/Tahsilat-api/internal/application/usecase"
	"github.com/jhoicas/Tahsilat-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	if err := cfg.RequireStore(); err != nil {
		log.Fatal().Err(err).Msg("configuración incompleta")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewServicePool(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión privilegiada a PostgreSQL")
	}
	defer pool.Close()

	seeder := usecase.NewDemoSeeder(
		postgres.NewCompanyRepository(pool),
		postgres.NewUserRepository(pool),
		postgres.NewProfileRepository(pool),
		postgres.NewCustomerRepository(pool),
		postgres.NewDebtRepository(pool),
		log,
	)
	company, err := seeder.Seed(ctx, cfg.Demo)
	if err != nil {
		log.Fatal().Err(err).Msg("seed demo")
	}
	log.Info().Str("company_id", company.ID).Str("slug", company.Slug).Msg("demo lista")
}
