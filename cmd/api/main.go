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
	"github.com/shopspring/decimal"

	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
	stockdomain "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/domain/stock"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/infrastructure/httpcatalog"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/infrastructure/postgres"
	httpRouter "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/interfaces/http"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/pkg/config"
	"github.com/blacknetb/Sistema-de-Inventario-QR-sub006/pkg/logger"
)

// @title        Stock Engine API
// @version      1.0
// @description  Motor de umbrales y reposición de stock. Mantiene un snapshot en memoria del corte de stock bajo del inventario, lo clasifica por niveles de alerta y emite órdenes de reposición hacia el origen.
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
		Str("source", cfg.Source.Driver).
		Msg("iniciando aplicación")

	thresholds := stockdomain.Thresholds{
		Critical: decimal.NewFromFloat(cfg.Stock.CriticalThreshold),
		Low:      decimal.NewFromFloat(cfg.Stock.LowThreshold),
		Warning:  decimal.NewFromFloat(cfg.Stock.WarningThreshold),
	}
	if err := thresholds.Validate(); err != nil {
		log.Fatal().Err(err).Msg("umbrales de stock inválidos")
	}

	ctx := context.Background()

	var (
		source    stockapp.CatalogSource
		submitter stockapp.RestockSubmitter
	)
	switch cfg.Source.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		source = postgres.NewCatalogRepository(pool)
		submitter = postgres.NewRestockRepository(pool)
	default: // "api", validado en config.Load
		client := httpcatalog.NewClient(cfg.Source.APIBaseURL, cfg.Source.Timeout())
		source, submitter = client, client
	}

	engine := stockapp.NewEngine(source, submitter, thresholds, cfg.Stock.BatchConcurrency)

	refreshCtx, stopRefresher := context.WithCancel(ctx)
	defer stopRefresher()
	refresher := stockapp.NewRefresher(engine, cfg.Stock.RefreshInterval(), log.Component("refresher"))
	go refresher.Run(refreshCtx)

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
		Title:    "Stock Engine API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		meta := engine.SnapshotMeta()
		return c.JSON(fiber.Map{
			"status":            "ok",
			"service":           cfg.App.Name,
			"stale":             meta.Stale,
			"last_refreshed_at": meta.LastRefreshedAt,
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Engine: engine,
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

	stopRefresher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	engine.Close()

	log.Info().Msg("aplicación detenida")
}
