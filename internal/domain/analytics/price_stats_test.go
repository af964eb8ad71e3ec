package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/analytics"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

func registrosConPrecios(precios ...string) []*entity.InboundRecord {
	out := make([]*entity.InboundRecord, 0, len(precios))
	for _, p := range precios {
		out = append(out, &entity.InboundRecord{UnitPrice: decimal.RequireFromString(p)})
	}
	return out
}

// TestCompute_SecuenciaVacia promedio 0 y extremos ausentes; no es error.
func TestCompute_SecuenciaVacia(t *testing.T) {
	stats := analytics.Compute(nil)

	assert.True(t, stats.Average.IsZero())
	assert.Nil(t, stats.Min)
	assert.Nil(t, stats.Max)
}

// TestCompute_PromedioSimple el promedio es media aritmética de precios,
// no ponderada por cantidad.
func TestCompute_PromedioSimple(t *testing.T) {
	stats := analytics.Compute(registrosConPrecios("10", "20"))

	require.NotNil(t, stats.Min)
	require.NotNil(t, stats.Max)
	assert.True(t, decimal.RequireFromString("15").Equal(stats.Average), "promedio: %s", stats.Average)
	assert.True(t, decimal.RequireFromString("10").Equal(*stats.Min))
	assert.True(t, decimal.RequireFromString("20").Equal(*stats.Max))
}

// TestCompute_NoPonderado las cantidades de los registros no influyen.
func TestCompute_NoPonderado(t *testing.T) {
	registros := registrosConPrecios("2.00", "2.50", "3.00")
	registros[0].Quantity = 5
	registros[1].Quantity = 10
	registros[2].Quantity = 7

	stats := analytics.Compute(registros)

	assert.True(t, decimal.RequireFromString("2.50").Equal(stats.Average), "promedio: %s", stats.Average)
	assert.True(t, decimal.RequireFromString("2.00").Equal(*stats.Min))
	assert.True(t, decimal.RequireFromString("3.00").Equal(*stats.Max))
}

// TestCompute_UnSoloRegistro promedio, mínimo y máximo coinciden.
func TestCompute_UnSoloRegistro(t *testing.T) {
	stats := analytics.Compute(registrosConPrecios("19.99"))

	esperado := decimal.RequireFromString("19.99")
	assert.True(t, esperado.Equal(stats.Average))
	assert.True(t, esperado.Equal(*stats.Min))
	assert.True(t, esperado.Equal(*stats.Max))
}
