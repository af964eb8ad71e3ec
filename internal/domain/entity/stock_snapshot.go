package entity

import "time"

// StockSnapshot es el estado derivado de stock de un producto: función pura
// del libro de entradas y del producto, nunca destino directo de escrituras.
type StockSnapshot struct {
	ProductID       string
	Quantity        int64      // suma de las cantidades registradas
	MinStockAlert   int        // umbral efectivo (propio o DefaultMinStockAlert)
	LastInboundDate *time.Time // nil si el producto no tiene entradas
	LowStock        bool       // Quantity <= MinStockAlert
}

// StockLevel es la fila desnormalizada de stock por producto (inventory_stock).
// Se refresca únicamente dentro de la transacción de registro de entrada;
// snapshots y reportes recalculan siempre desde el libro.
type StockLevel struct {
	ProductID       string
	Quantity        int64
	LastInboundDate *time.Time
	UpdatedAt       time.Time
}
