package repository

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// LowStockItem es el resultado crudo del listado de productos en alerta.
type LowStockItem struct {
	ProductID       string
	Name            string
	SKU             string
	Unit            string
	Quantity        int64
	MinStockAlert   int
	LastInboundDate *time.Time
}

// StockRepository define el puerto para la fila desnormalizada inventory_stock.
// Refresh recalcula la fila desde el libro de entradas y solo se invoca dentro
// de la transacción de registro; nunca se escribe de forma independiente.
type StockRepository interface {
	Get(productID string) (*entity.StockLevel, error)
	// Refresh recalcula cantidad y última fecha de entrada desde inbound_records.
	Refresh(productID string) error
	// ListLowStock devuelve los productos cuyo stock actual está en o por
	// debajo de su umbral de alerta (o del umbral por defecto si no tienen),
	// ordenados por mayor déficit primero.
	ListLowStock(ctx context.Context) ([]LowStockItem, error)
}
