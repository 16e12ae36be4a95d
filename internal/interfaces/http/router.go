package http

import (
	"github.com/gofiber/fiber/v2"

	stockapp "github.com/blacknetb/Sistema-de-Inventario-QR-sub006/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Engine *stockapp.Engine
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Engine)
	restockHandler := NewRestockHandler(deps.Engine)

	// Las rutas fijas van antes que /:id para que fiber no las capture como id.
	stock.Get("/alerts", stockHandler.GetAlerts)
	stock.Get("/alerts/export", stockHandler.ExportAlerts)
	stock.Get("/statistics", stockHandler.GetStatistics)
	stock.Post("/refresh", stockHandler.Refresh)
	stock.Post("/restock-critical", restockHandler.RestockCritical)
	stock.Get("/:id", stockHandler.GetDetail)
	stock.Post("/:id/restock", restockHandler.Restock)
}
