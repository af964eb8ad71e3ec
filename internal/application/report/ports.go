package report

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain/analytics"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// QuotationPDFGenerator genera la hoja de cotización de un producto en PDF.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(
		ctx context.Context,
		product *entity.Product,
		snapshot *entity.StockSnapshot,
		stats analytics.PriceStats,
	) ([]byte, error)
}

// HistoryExporter serializa el historial de entradas de un producto para
// intercambio con sistemas externos (ERP).
type HistoryExporter interface {
	ExportInboundHistory(product *entity.Product, records []*entity.InboundRecord) ([]byte, error)
}
