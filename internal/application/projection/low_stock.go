package projection

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// LowStockUseCase lista los productos en alerta de stock a partir de la fila
// desnormalizada (lectura rápida para el tablero; el snapshot puntual de un
// producto siempre se recalcula del libro).
type LowStockUseCase struct {
	stockRepo repository.StockRepository
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(stockRepo repository.StockRepository) *LowStockUseCase {
	return &LowStockUseCase{stockRepo: stockRepo}
}

// List devuelve los productos cuyo stock está en o por debajo de su umbral.
func (uc *LowStockUseCase) List(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	items, err := uc.stockRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		row := dto.LowStockItemDTO{
			ProductID:     it.ProductID,
			Name:          it.Name,
			SKU:           it.SKU,
			Unit:          it.Unit,
			StockQuantity: it.Quantity,
			MinStockAlert: it.MinStockAlert,
		}
		if it.LastInboundDate != nil {
			row.LastInboundDate = it.LastInboundDate.Format(time.DateOnly)
		}
		out = append(out, row)
	}
	return out, nil
}
