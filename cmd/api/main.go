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

	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
	"github.com/jpereyra/gestion-comercio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jpereyra/gestion-comercio-api/internal/interfaces/http"
	"github.com/jpereyra/gestion-comercio-api/pkg/config"
	"github.com/jpereyra/gestion-comercio-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	movimientoRepo := postgres.NewCashMovementRepository(pool)
	ventaRepo := postgres.NewSaleRepository(pool)
	productoRepo := postgres.NewProductRepository(pool)
	rubroRepo := postgres.NewRubricRepository(pool)
	sucursalRepo := postgres.NewSucursalRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)

	cajaUC := usecase.NewCajaUseCase(movimientoRepo, ventaRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo, sucursalRepo, settingsRepo)
	rubroUC := usecase.NewRubroUseCase(rubroRepo)
	sucursalUC := usecase.NewSucursalUseCase(sucursalRepo)

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
		Title:    "Gestión Comercio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CajaUC:     cajaUC,
		ProductoUC: productoUC,
		RubroUC:    rubroUC,
		SucursalUC: sucursalUC,
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
