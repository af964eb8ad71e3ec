package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// ProductHandler maneja las consultas de catálogo y reportes por producto.
type ProductHandler struct {
	catalogUC *catalog.CatalogUseCase
	reportUC  *report.ReportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(catalogUC *catalog.CatalogUseCase, reportUC *report.ReportUseCase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, reportUC: reportUC}
}

// Search godoc
// @Summary      Buscar productos por palabra clave (nombre o SKU)
// @Tags         products
// @Produce      json
// @Param        keyword  query  string  true  "Subcadena, insensible a mayúsculas"
// @Success      200      {array}  dto.ProductSearchResult
// @Router       /api/products [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	results, err := h.catalogUC.Search(c.Context(), keyword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
	}
	return c.JSON(results)
}

// GetByID godoc
// @Summary      Detalle de producto con snapshot de stock
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID o SKU del producto"
// @Success      200  {object}  dto.ProductDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.catalogUC.Detail(c.Context(), c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// InboundHistory godoc
// @Summary      Historial de entradas con estadísticas de precio
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.InboundHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inbound-history [get]
func (h *ProductHandler) InboundHistory(c *fiber.Ctx) error {
	out, err := h.reportUC.History(c.Context(), c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	return c.JSON(out)
}

// ExportHistory godoc
// @Summary      Exportar historial de entradas (XML)
// @Tags         products
// @Produce      application/xml
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/inbound-history/export [get]
func (h *ProductHandler) ExportHistory(c *fiber.Ctx) error {
	out, err := h.reportUC.ExportHistory(c.Context(), c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// Quotation godoc
// @Summary      Hoja de cotización del producto (PDF)
// @Tags         products
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quotation [get]
func (h *ProductHandler) Quotation(c *fiber.Ctx) error {
	out, err := h.reportUC.Quotation(c.Context(), c.Params("id"))
	if err != nil {
		return productError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

func productError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
}
