package report

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/projection"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/analytics"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// ReportUseCase flujos de reporte de solo lectura sobre el libro de entradas:
// historial con estadísticas de precio, cotización en PDF y exportación XML.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	recordRepo  repository.InboundRecordRepository
	pdf         QuotationPDFGenerator
	exporter    HistoryExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	recordRepo repository.InboundRecordRepository,
	pdf QuotationPDFGenerator,
	exporter HistoryExporter,
) *ReportUseCase {
	return &ReportUseCase{
		productRepo: productRepo,
		recordRepo:  recordRepo,
		pdf:         pdf,
		exporter:    exporter,
	}
}

// History devuelve el historial ordenado del producto junto con el promedio,
// mínimo y máximo de precio unitario.
func (uc *ReportUseCase) History(ctx context.Context, productID string) (*dto.InboundHistoryResponse, error) {
	_, records, err := uc.load(productID)
	if err != nil {
		return nil, err
	}
	stats := analytics.Compute(records)

	out := &dto.InboundHistoryResponse{
		Records: make([]dto.InboundRecordDTO, 0, len(records)),
		PriceStats: dto.PriceStatsDTO{
			Average: stats.Average,
			Min:     stats.Min,
			Max:     stats.Max,
		},
	}
	for _, r := range records {
		out.Records = append(out.Records, dto.NewInboundRecordDTO(r))
	}
	return out, nil
}

// Quotation genera la hoja de cotización en PDF del producto.
func (uc *ReportUseCase) Quotation(ctx context.Context, productID string) ([]byte, error) {
	product, records, err := uc.load(productID)
	if err != nil {
		return nil, err
	}
	snapshot := projection.Fold(product, records)
	stats := analytics.Compute(records)
	return uc.pdf.GenerateQuotationPDF(ctx, product, snapshot, stats)
}

// ExportHistory serializa el historial del producto (XML) para sistemas externos.
func (uc *ReportUseCase) ExportHistory(ctx context.Context, productID string) ([]byte, error) {
	product, records, err := uc.load(productID)
	if err != nil {
		return nil, err
	}
	return uc.exporter.ExportInboundHistory(product, records)
}

func (uc *ReportUseCase) load(productID string) (*entity.Product, []*entity.InboundRecord, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrNotFound
	}
	records, err := uc.recordRepo.ListByProduct(productID)
	if err != nil {
		return nil, nil, err
	}
	return product, records, nil
}
