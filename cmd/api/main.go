package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/soundwave-studio/almacen/internal/application/inventory"
	"github.com/soundwave-studio/almacen/internal/infrastructure/postgres"
	httpRouter "github.com/soundwave-studio/almacen/internal/interfaces/http"
	"github.com/soundwave-studio/almacen/pkg/config"
	"github.com/soundwave-studio/almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), "migrations"); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)

	settings := inventory.Settings{
		DefaultStockMinimum: cfg.Inventory.DefaultStockMinimum,
		DefaultStockMaximum: cfg.Inventory.DefaultStockMaximum,
		DefaultLocation:     cfg.Inventory.DefaultLocation,
		RecentMovementDays:  cfg.Inventory.RecentMovementDays,
		AutoAlerts:          cfg.Inventory.AutoAlerts,
	}

	reconciler := inventory.NewReconcileUseCase(catalogRepo, productRepo, settings, log)
	alertsUC := inventory.NewStockAlertUseCase(alertRepo, settings, log)
	applyUC := inventory.NewApplyMovementUseCase(productRepo, movementRepo, alertsUC, log)
	queriesUC := inventory.NewQueryUseCase(reconciler, productRepo, movementRepo, settings)
	updateProductUC := inventory.NewUpdateProductUseCase(productRepo)
	saleSyncUC := inventory.NewSaleSyncUseCase(applyUC, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Queries:       queriesUC,
		Apply:         applyUC,
		UpdateProduct: updateProductUC,
		Alerts:        alertsUC,
		SaleSync:      saleSyncUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
