package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Tahsilat-api/docs"
	"github.com/jhoicas/Tahsilat-api/internal/application/actions"
	"github.com/jhoicas/Tahsilat-api/internal/application/auth"
	"github.com/jhoicas/Tahsilat-api/internal/application/tenant"
	"github.com/jhoicas/Tahsilat-api/internal/application/usecase"
	"github.com/jhoicas/Tahsilat-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tahsilat-api/internal/infrastructure/revalidate"
	httpRouter "github.com/jhoicas/Tahsilat-api/internal/interfaces/http"
	"github.com/jhoicas/Tahsilat-api/pkg/config"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// @title        Tahsilat API
// @version      1.0
// @description  Cartera y cobranzas multi-empresa: acciones de notas, búsqueda de clientes y login.
// @BasePath     /
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
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Revalidación: Redis si hay REDIS_URL (varias réplicas), si no en memoria.
	var invalidator actions.Invalidator
	if cfg.Redis.URL != "" {
		client, err := revalidate.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		publisher := revalidate.NewRedisPublisher(client, cfg.Redis.Channel, log)
		defer publisher.Close()
		err = publisher.Subscribe(ctx, func(ev revalidate.Event) {
			log.Debug().Str("path", ev.Path).Time("at", ev.At).Msg("vista invalidada")
		})
		if err != nil {
			log.Warn().Err(err).Msg("suscripción al canal de revalidación")
		}
		invalidator = publisher
	} else {
		log.Warn().Msg("REDIS_URL vacío: revalidación en memoria")
		invalidator = revalidate.NewMemoryInvalidator()
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := tenant.NewResolver(profileRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	authUC := auth.NewAuthUseCase(userRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	noteUC := actions.NewNoteUseCase(txRunner, resolver, invalidator, log)
	customerUC := actions.NewCustomerUseCase(txRunner, resolver, cfg.App.FallbackCurrency, log)
	demoLoginUC := actions.NewDemoLoginUseCase(authUC, cfg.Demo, invalidator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tahsilat API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Notes:         noteUC,
		Customers:     customerUC,
		Resolver:      resolver,
		DemoLogin:     demoLoginUC,
		AuthUC:        authUC,
		Companies:     companyUC,
		JWTSecret:     cfg.JWT.Secret,
		BaseDomain:    cfg.App.BaseDomain,
		SecureCookies: cfg.App.Env != "development",
		Log:           log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
