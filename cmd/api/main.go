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

	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stock-engine/internal/interfaces/http"
	"github.com/tu-usuario/stock-engine/pkg/config"
	"github.com/tu-usuario/stock-engine/pkg/logger"
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

	warehouseRepo := postgres.NewWarehouseRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	stockQueryRepo := postgres.NewStockQueryRepository(pool)
	thresholdRepo := postgres.NewThresholdRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, variantRepo, warehouseRepo)
	transferUC := inventory.NewTransferUseCase(txRunner, variantRepo, warehouseRepo)
	batchUC := inventory.NewBatchIntakeUseCase(registerMovementUC)
	importUC := inventory.NewBulkImportUseCase(variantRepo, batchUC)
	historyUC := inventory.NewHistoryUseCase(movementRepo)
	stockQueryUC := inventory.NewStockQueryUseCase(stockQueryRepo)
	alertsUC := inventory.NewAlertsUseCase(stockQueryRepo, thresholdRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if mw := swaggerMiddleware("./docs/swagger.json"); mw != nil {
		app.Use(mw)
	} else {
		log.Warn().Str("file", "./docs/swagger.json").Msg("spec de swagger no encontrada, UI deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegisterMovement: registerMovementUC,
		Transfer:         transferUC,
		BatchIntake:      batchUC,
		BulkImport:       importUC,
		History:          historyUC,
		StockQuery:       stockQueryUC,
		Alerts:           alertsUC,
		WarehouseRepo:    warehouseRepo,
		JWTSecret:        cfg.JWT.Secret,
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

// swaggerMiddleware construye el middleware del UI solo si la spec existe en
// disco; el middleware de gofiber/contrib hace panic con un FilePath ausente
// y el binario debe arrancar igual sin la spec.
func swaggerMiddleware(specPath string) fiber.Handler {
	if _, err := os.Stat(specPath); err != nil {
		return nil
	}
	return swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specPath,
		Path:     "docs",
		Title:    "Stock Engine API",
	})
}
