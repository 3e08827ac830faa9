package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// RouterDeps dependencias de los handlers.
type RouterDeps struct {
	RegisterMovement *inventory.RegisterMovementUseCase
	Transfer         *inventory.TransferUseCase
	BatchIntake      *inventory.BatchIntakeUseCase
	BulkImport       *inventory.BulkImportUseCase
	History          *inventory.HistoryUseCase
	StockQuery       *inventory.StockQueryUseCase
	Alerts           *inventory.AlertsUseCase
	WarehouseRepo    repository.WarehouseRepository
	JWTSecret        string
}

// Router registra las rutas de la API. Todo /api requiere token; las
// mutaciones de inventario exigen además rol admin o bodeguero.
func Router(app *fiber.App, deps RouterDeps) {
	movements := NewMovementHandler(
		deps.RegisterMovement,
		deps.Transfer,
		deps.BatchIntake,
		deps.BulkImport,
		deps.History,
	)
	stockHandler := NewStockHandler(deps.StockQuery, deps.Alerts)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseRepo)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	mutador := RequireRole("admin", "bodeguero")

	inv := api.Group("/inventory")
	inv.Post("/movements", mutador, movements.Register)
	inv.Get("/movements", movements.History)
	inv.Get("/movements/:id", movements.GetByID)
	inv.Post("/transfers", mutador, movements.Transfer)
	inv.Post("/batch", mutador, movements.Batch)
	inv.Post("/import", mutador, movements.Import)

	stock := api.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Get("/alerts", stockHandler.Alerts)
	stock.Post("/thresholds", mutador, stockHandler.SetThreshold)

	warehouses := api.Group("/warehouses")
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
}
