package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// SubmitInboundRequest body para POST /api/inbound.
// inbound_date en formato YYYY-MM-DD; vacío = fecha actual.
type SubmitInboundRequest struct {
	ProductID         string          `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	Supplier          string          `json:"supplier,omitempty"`
	WarehouseLocation string          `json:"warehouse_location,omitempty"`
	InboundDate       string          `json:"inbound_date,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// SubmitInboundResponse respuesta de una entrada registrada.
type SubmitInboundResponse struct {
	BatchNumber string `json:"batch_number"`
}

// InboundRecordDTO representación de un registro de entrada en respuestas.
type InboundRecordDTO struct {
	ID                int64           `json:"id"`
	ProductID         string          `json:"product_id"`
	Quantity          int64           `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	BatchNumber       string          `json:"batch_number"`
	Supplier          string          `json:"supplier,omitempty"`
	WarehouseLocation string          `json:"warehouse_location,omitempty"`
	InboundDate       string          `json:"inbound_date"`
	Notes             string          `json:"notes,omitempty"`
	Status            string          `json:"status"`
}

// PriceStatsDTO estadísticas de precio unitario del historial.
type PriceStatsDTO struct {
	Average decimal.Decimal  `json:"average"`
	Min     *decimal.Decimal `json:"min,omitempty"`
	Max     *decimal.Decimal `json:"max,omitempty"`
}

// InboundHistoryResponse historial completo de entradas de un producto.
type InboundHistoryResponse struct {
	Records    []InboundRecordDTO `json:"records"`
	PriceStats PriceStatsDTO      `json:"price_stats"`
}

// NewInboundRecordDTO convierte la entidad al DTO de respuesta.
func NewInboundRecordDTO(r *entity.InboundRecord) InboundRecordDTO {
	return InboundRecordDTO{
		ID:                r.ID,
		ProductID:         r.ProductID,
		Quantity:          r.Quantity,
		UnitPrice:         r.UnitPrice,
		TotalPrice:        r.TotalPrice,
		BatchNumber:       r.BatchNumber,
		Supplier:          r.Supplier,
		WarehouseLocation: r.WarehouseLocation,
		InboundDate:       r.InboundDate.Format(time.DateOnly),
		Notes:             r.Notes,
		Status:            r.Status,
	}
}
