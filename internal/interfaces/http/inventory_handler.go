package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/projection"
)

// InventoryHandler maneja las consultas agregadas de inventario.
type InventoryHandler struct {
	lowStock *projection.LowStockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(lowStock *projection.LowStockUseCase) *InventoryHandler {
	return &InventoryHandler{lowStock: lowStock}
}

// LowStock godoc
// @Summary      Productos en alerta de stock
// @Description  Devuelve los productos cuyo stock actual está en o por debajo
//
//	de su umbral de alerta, ordenados por mayor déficit primero.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.lowStock.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total": len(items),
		"items": items,
	})
}
