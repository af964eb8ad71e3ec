package batch_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/batch"
)

var dia = time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

// TestNext_FormatoYTrazabilidad el lote lleva prefijo, fecha legible y
// secuencia de cuatro dígitos.
func TestNext_FormatoYTrazabilidad(t *testing.T) {
	g := batch.NewGenerator()

	lote, err := g.Next(dia)
	require.NoError(t, err)
	assert.Equal(t, "IN202608280001", lote)

	lote, err = g.Next(dia)
	require.NoError(t, err)
	assert.Equal(t, "IN202608280002", lote)
}

// TestNext_OrdenLexicografico lotes emitidos después comparan mayores:
// ordenables por fecha de creación.
func TestNext_OrdenLexicografico(t *testing.T) {
	g := batch.NewGenerator()

	primero, err := g.Next(dia)
	require.NoError(t, err)
	segundo, err := g.Next(dia)
	require.NoError(t, err)
	tercero, err := g.Next(dia.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Less(t, primero, segundo)
	assert.Less(t, segundo, tercero)
}

// TestNext_UnicidadConcurrente dos envíos que compiten dentro del mismo
// periodo jamás reciben el mismo lote.
func TestNext_UnicidadConcurrente(t *testing.T) {
	g := batch.NewGenerator()

	const n = 200
	var wg sync.WaitGroup
	lotes := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lote, err := g.Next(dia)
			assert.NoError(t, err)
			lotes <- lote
		}()
	}
	wg.Wait()
	close(lotes)

	vistos := make(map[string]struct{}, n)
	for lote := range lotes {
		_, repetido := vistos[lote]
		assert.False(t, repetido, "lote repetido: %s", lote)
		vistos[lote] = struct{}{}
	}
	assert.Len(t, vistos, n)
}

// TestNext_AgotamientoDelPeriodo con la secuencia del día agotada devuelve
// GenerationConflict; el periodo siguiente vuelve a emitir.
func TestNext_AgotamientoDelPeriodo(t *testing.T) {
	g := batch.NewGeneratorAt(dia, 9999)

	_, err := g.Next(dia)
	assert.ErrorIs(t, err, domain.ErrGenerationConflict)

	// El llamador reintenta con el periodo siguiente.
	lote, err := g.Next(dia.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, "IN202608290001", lote)
}

// TestNext_RelojRetrocede el generador nunca vuelve a un periodo anterior:
// conserva la unicidad dentro del proceso aunque el reloj retroceda.
func TestNext_RelojRetrocede(t *testing.T) {
	g := batch.NewGenerator()

	_, err := g.Next(dia)
	require.NoError(t, err)

	lote, err := g.Next(dia.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, "IN202608280002", lote, "debe seguir en el periodo más reciente")
}
