package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/projection"
	"github.com/tu-usuario/almacen-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordInbound *ledger.RecordInboundUseCase
	CatalogUC     *catalog.CatalogUseCase
	ReportUC      *report.ReportUseCase
	LowStockUC    *projection.LowStockUseCase
	JWTSecret     string // vacío = rutas de escritura sin autenticación (modo local)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Consultas de catálogo y reportes (solo lectura, público)
	productHandler := NewProductHandler(deps.CatalogUC, deps.ReportUC)
	products := api.Group("/products")
	products.Get("/", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/inbound-history", productHandler.InboundHistory)
	products.Get("/:id/inbound-history/export", productHandler.ExportHistory)
	products.Get("/:id/quotation", productHandler.Quotation)

	inventoryHandler := NewInventoryHandler(deps.LowStockUC)
	api.Get("/inventory/low-stock", inventoryHandler.LowStock)

	// Registro de entradas (escritura; protegido con Bearer Token si hay secret)
	inboundHandler := NewInboundHandler(deps.RecordInbound)
	if deps.JWTSecret != "" {
		api.Post("/inbound", AuthMiddleware(deps.JWTSecret), inboundHandler.Submit)
	} else {
		api.Post("/inbound", inboundHandler.Submit)
	}
}
