package entity

import "time"

// DefaultMinStockAlert es el umbral de alerta cuando el producto no tiene uno propio.
// Regla de negocio documentada: 10 unidades.
const DefaultMinStockAlert = 10

// Product representa un producto del catálogo. Los registros de entrada lo
// referencian pero nunca lo mutan; el stock se deriva del libro de entradas.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Category      string
	Description   string
	Unit          string // unidad de medida (ej: "unidad", "caja", "kg")
	MinStockAlert *int   // nil = sin umbral propio, aplica DefaultMinStockAlert
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AlertThreshold devuelve el umbral de alerta efectivo del producto.
func (p *Product) AlertThreshold() int {
	if p.MinStockAlert == nil {
		return DefaultMinStockAlert
	}
	return *p.MinStockAlert
}
