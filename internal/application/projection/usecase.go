package projection

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// SnapshotUseCase deriva el estado de stock de un producto plegando su
// historial de entradas. Se recalcula perezosamente en cada lectura: es
// estado derivado y nunca puede divergir del libro.
type SnapshotUseCase struct {
	productRepo repository.ProductRepository
	recordRepo  repository.InboundRecordRepository
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(
	productRepo repository.ProductRepository,
	recordRepo repository.InboundRecordRepository,
) *SnapshotUseCase {
	return &SnapshotUseCase{productRepo: productRepo, recordRepo: recordRepo}
}

// SnapshotFor pliega el historial del producto: suma de cantidades, máxima
// fecha de entrada y comparación contra el umbral de alerta (o el umbral por
// defecto del sistema si el producto no tiene uno propio). Un producto sin
// entradas no es error: stock 0 y última fecha ausente.
func (uc *SnapshotUseCase) SnapshotFor(ctx context.Context, productID string) (*entity.StockSnapshot, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	records, err := uc.recordRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	return Fold(product, records), nil
}

// Fold calcula el snapshot como función pura del producto y sus entradas.
func Fold(product *entity.Product, records []*entity.InboundRecord) *entity.StockSnapshot {
	snapshot := &entity.StockSnapshot{
		ProductID:     product.ID,
		MinStockAlert: product.AlertThreshold(),
	}
	for _, r := range records {
		snapshot.Quantity += r.Quantity
		if snapshot.LastInboundDate == nil || r.InboundDate.After(*snapshot.LastInboundDate) {
			d := r.InboundDate
			snapshot.LastInboundDate = &d
		}
	}
	snapshot.LowStock = snapshot.Quantity <= int64(snapshot.MinStockAlert)
	return snapshot
}
