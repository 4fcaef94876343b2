// @title        KGL API
// @version      1.0
// @description  Procurement, sales and user records for Karibu Groceries Ltd.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
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

	_ "github.com/karibu-groceries/kgl-api/docs"
	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
	"github.com/karibu-groceries/kgl-api/internal/domain/repository"
	"github.com/karibu-groceries/kgl-api/internal/infrastructure/memory"
	infrapdf "github.com/karibu-groceries/kgl-api/internal/infrastructure/pdf"
	"github.com/karibu-groceries/kgl-api/internal/infrastructure/postgres"
	httpRouter "github.com/karibu-groceries/kgl-api/internal/interfaces/http"
	"github.com/karibu-groceries/kgl-api/pkg/config"
	"github.com/karibu-groceries/kgl-api/pkg/logger"
)

type repositories struct {
	procurements repository.ProcurementRepository
	sales        repository.SaleRepository
	users        repository.UserRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("starting application")

	ctx := context.Background()
	var repos repositories
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("in-memory storage: records are lost on restart")
		repos = repositories{
			procurements: memory.NewProcurementRepository(),
			sales:        memory.NewSaleRepository(),
			users:        memory.NewUserRepository(),
		}
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}
		repos = repositories{
			procurements: postgres.NewProcurementRepository(pool),
			sales:        postgres.NewSaleRepository(pool),
			users:        postgres.NewUserRepository(pool),
		}
	}

	procurementUC := usecase.NewProcurementUseCase(repos.procurements)
	saleUC := usecase.NewSaleUseCase(repos.sales)
	userUC := usecase.NewUserUseCase(repos.users)
	receiptUC := usecase.NewReceiptUseCase(repos.sales, infrapdf.NewReceiptGenerator(""))
	authUC := auth.NewAuthUseCase(repos.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "KGL API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger document not found, /docs disabled")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProcurementUC: procurementUC,
		SaleUC:        saleUC,
		ReceiptUC:     receiptUC,
		UserUC:        userUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
