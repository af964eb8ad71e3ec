// Package analytics calcula estadísticas de precio sobre el historial de
// entradas de un producto (servicio de dominio, solo lectura).
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// PriceStats resume los precios unitarios de una secuencia de entradas.
// El promedio es la media aritmética simple de los precios, NO ponderada por
// cantidad: es una conveniencia de reporte, no un cálculo de costeo. Si se
// llegara a requerir costeo contable habría que revisarlo.
type PriceStats struct {
	Average decimal.Decimal  // 0 si la secuencia está vacía
	Min     *decimal.Decimal // nil si la secuencia está vacía
	Max     *decimal.Decimal // nil si la secuencia está vacía
}

// Compute calcula promedio, mínimo y máximo de precio unitario.
// Una secuencia vacía no es error: promedio 0 y extremos ausentes.
func Compute(records []*entity.InboundRecord) PriceStats {
	if len(records) == 0 {
		return PriceStats{Average: decimal.Zero}
	}

	prices := make([]decimal.Decimal, len(records))
	for i, r := range records {
		prices[i] = r.UnitPrice
	}

	avg := decimal.Avg(prices[0], prices[1:]...)
	min := decimal.Min(prices[0], prices[1:]...)
	max := decimal.Max(prices[0], prices[1:]...)
	return PriceStats{Average: avg, Min: &min, Max: &max}
}
