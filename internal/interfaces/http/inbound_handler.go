package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain"
)

// InboundHandler maneja el registro de entradas de inventario.
type InboundHandler struct {
	uc *ledger.RecordInboundUseCase
}

// NewInboundHandler construye el handler.
func NewInboundHandler(uc *ledger.RecordInboundUseCase) *InboundHandler {
	return &InboundHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar entrada de inventario
// @Tags         inbound
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitInboundRequest  true  "product_id, quantity, unit_price; supplier, warehouse_location, inbound_date (YYYY-MM-DD) y notes opcionales"
// @Success      201   {object}  dto.SubmitInboundResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inbound [post]
func (h *InboundHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitInboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := ledger.RecordInboundInput{
		ProductID:         in.ProductID,
		Quantity:          in.Quantity,
		UnitPrice:         in.UnitPrice,
		Supplier:          in.Supplier,
		WarehouseLocation: in.WarehouseLocation,
		Notes:             in.Notes,
	}
	if in.InboundDate != "" {
		d, err := time.Parse(time.DateOnly, in.InboundDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "inbound_date debe tener formato YYYY-MM-DD"})
		}
		input.InboundDate = &d
	}

	record, err := h.uc.RecordInbound(c.Context(), input)
	if err != nil {
		return inboundError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SubmitInboundResponse{BatchNumber: record.BatchNumber})
}

// inboundError mapea cada error del dominio a un código estable con su razón;
// lo que no es del dominio se reporta como fallo de persistencia sin reintento.
func inboundError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.ErrNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: domain.ErrInvalidQuantity.Error()})
	case errors.Is(err, domain.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PRICE", Message: domain.ErrInvalidPrice.Error()})
	case errors.Is(err, domain.ErrGenerationConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "GENERATION_CONFLICT", Message: domain.ErrGenerationConflict.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_BATCH", Message: domain.ErrDuplicate.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
	}
}
