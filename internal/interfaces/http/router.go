package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundwave-studio/almacen/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Queries       *inventory.QueryUseCase
	Apply         *inventory.ApplyMovementUseCase
	UpdateProduct *inventory.UpdateProductUseCase
	Alerts        *inventory.StockAlertUseCase
	SaleSync      *inventory.SaleSyncUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Queries, deps.Apply, deps.UpdateProduct)
	inv.Get("/products", inventoryHandler.ListProducts)
	inv.Get("/products/low-stock", inventoryHandler.LowStock)
	inv.Get("/products/out-of-stock", inventoryHandler.OutOfStock)
	inv.Put("/products/:id", inventoryHandler.UpdateProduct)
	inv.Post("/movements", inventoryHandler.ApplyMovement)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Get("/stats", inventoryHandler.Stats)

	alertHandler := NewAlertHandler(deps.Alerts)
	inv.Get("/alerts", alertHandler.List)
	inv.Post("/alerts/:id/read", alertHandler.MarkRead)

	// Frontera con el punto de venta.
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleSync)
	sales.Post("/stock-sync", saleHandler.SyncStock)
}
