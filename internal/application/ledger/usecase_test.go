package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/batch"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	hoy = time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	d1  = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	d2  = time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	d3  = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
)

func relojFijo() time.Time { return hoy }

// nuevoEntorno construye un almacén en memoria con un producto registrado y el
// caso de uso de registro con reloj fijo.
func nuevoEntorno(t *testing.T) (*memory.Store, *ledger.RecordInboundUseCase, *entity.Product) {
	t.Helper()
	store := memory.NewStore()
	producto := &entity.Product{
		ID:   "p-001",
		SKU:  "SKU-001",
		Name: "Tornillo M8",
		Unit: "unidad",
	}
	require.NoError(t, store.Products().Create(producto))

	uc := ledger.NewRecordInboundUseCase(
		store, store.Products(), store.Records(), batch.NewGenerator(), relojFijo,
	)
	return store, uc, producto
}

func entrada(productID string, cantidad int64, precio string, fecha *time.Time) ledger.RecordInboundInput {
	return ledger.RecordInboundInput{
		ProductID:   productID,
		Quantity:    cantidad,
		UnitPrice:   decimal.RequireFromString(precio),
		InboundDate: fecha,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordInbound
// ──────────────────────────────────────────────────────────────────────────────

// TestRecordInbound_RegistroCompleto un registro exitoso lleva total exacto,
// lote asignado, estado recorded y fecha por defecto (la de envío).
func TestRecordInbound_RegistroCompleto(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)

	rec, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 3, "19.99", nil))
	require.NoError(t, err)

	assert.Equal(t, int64(1), rec.ID)
	assert.True(t, decimal.RequireFromString("59.97").Equal(rec.TotalPrice),
		"total exacto, sin error de punto flotante: %s", rec.TotalPrice)
	assert.Equal(t, "IN202608280001", rec.BatchNumber)
	assert.Equal(t, entity.InboundStatusRecorded, rec.Status)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), rec.InboundDate)
}

// TestRecordInbound_FechaPorDefectoEnZonaLocal la fecha por defecto es el día
// calendario del reloj, no el día UTC. A la 01:00 en UTC+8 todavía es el día
// anterior en UTC; la fecha registrada y la fecha del lote deben ser las del
// reloj y coincidir entre sí.
func TestRecordInbound_FechaPorDefectoEnZonaLocal(t *testing.T) {
	store := memory.NewStore()
	producto := &entity.Product{ID: "p-001", SKU: "SKU-001", Name: "Tornillo M8"}
	require.NoError(t, store.Products().Create(producto))

	zona := time.FixedZone("UTC+8", 8*60*60)
	reloj := func() time.Time { return time.Date(2026, 8, 28, 1, 0, 0, 0, zona) }
	uc := ledger.NewRecordInboundUseCase(
		store, store.Products(), store.Records(), batch.NewGenerator(), reloj,
	)

	rec, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 1, "1.00", nil))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-28", rec.InboundDate.Format(time.DateOnly))
	assert.Equal(t, "IN202608280001", rec.BatchNumber,
		"la fecha del lote y la fecha de entrada salen del mismo reloj")
}

// TestRecordInbound_FechaExplicitaConservaElDia una fecha enviada con hora y
// zona se reduce a su día calendario, no al día UTC.
func TestRecordInbound_FechaExplicitaConservaElDia(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)

	zona := time.FixedZone("UTC+8", 8*60*60)
	fecha := time.Date(2026, 8, 15, 1, 30, 0, 0, zona)
	rec, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 1, "1.00", &fecha))
	require.NoError(t, err)

	assert.Equal(t, "2026-08-15", rec.InboundDate.Format(time.DateOnly))
}

// TestRecordInbound_LeyDeAcumulacion el stock del historial siempre es la suma
// de las cantidades registradas hasta el momento.
func TestRecordInbound_LeyDeAcumulacion(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)
	ctx := context.Background()

	var esperado int64
	for _, cantidad := range []int64{5, 10, 7, 1, 100} {
		_, err := uc.RecordInbound(ctx, entrada(producto.ID, cantidad, "2.00", nil))
		require.NoError(t, err)
		esperado += cantidad

		historial, err := uc.HistoryFor(ctx, producto.ID)
		require.NoError(t, err)
		var suma int64
		for _, r := range historial {
			suma += r.Quantity
		}
		assert.Equal(t, esperado, suma)
	}
}

// TestRecordInbound_ValidacionSinMutacion un rechazo de validación no deja
// rastro en el libro: todo o nada.
func TestRecordInbound_ValidacionSinMutacion(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)
	ctx := context.Background()

	_, err := uc.RecordInbound(ctx, entrada(producto.ID, 5, "2.00", nil))
	require.NoError(t, err)

	casos := []struct {
		nombre string
		input  ledger.RecordInboundInput
		espera error
	}{
		{"cantidad cero", entrada(producto.ID, 0, "2.00", nil), domain.ErrInvalidQuantity},
		{"cantidad negativa", entrada(producto.ID, -3, "2.00", nil), domain.ErrInvalidQuantity},
		{"precio cero", entrada(producto.ID, 1, "0", nil), domain.ErrInvalidPrice},
		{"precio negativo", entrada(producto.ID, 1, "-2.00", nil), domain.ErrInvalidPrice},
		{"tres decimales", entrada(producto.ID, 1, "2.999", nil), domain.ErrInvalidPrice},
		{"producto inexistente", entrada("no-existe", 1, "2.00", nil), domain.ErrNotFound},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.RecordInbound(ctx, c.input)
			assert.ErrorIs(t, err, c.espera)

			historial, err := uc.HistoryFor(ctx, producto.ID)
			require.NoError(t, err)
			assert.Len(t, historial, 1, "el libro no debe mutar tras un rechazo")
		})
	}
}

// TestHistoryFor_OrdenEstable el historial sale ordenado por
// (fecha de entrada asc, id asc) sin importar el orden de inserción.
func TestHistoryFor_OrdenEstable(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)
	ctx := context.Background()

	// Insertar fuera de orden cronológico; d2 dos veces para probar el
	// desempate por id.
	for _, fecha := range []time.Time{d3, d1, d2, d2} {
		f := fecha
		_, err := uc.RecordInbound(ctx, entrada(producto.ID, 1, "1.00", &f))
		require.NoError(t, err)
	}

	historial, err := uc.HistoryFor(ctx, producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, 4)

	assert.Equal(t, d1, historial[0].InboundDate)
	assert.Equal(t, d2, historial[1].InboundDate)
	assert.Equal(t, d2, historial[2].InboundDate)
	assert.Equal(t, d3, historial[3].InboundDate)
	assert.Less(t, historial[1].ID, historial[2].ID, "empate de fecha se resuelve por id")
}

// TestRecordInbound_UnicidadConcurrente dos (o muchos) registros concurrentes
// sobre el mismo producto jamás comparten número de lote ni pierden cantidades.
func TestRecordInbound_UnicidadConcurrente(t *testing.T) {
	_, uc, producto := nuevoEntorno(t)
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.RecordInbound(ctx, entrada(producto.ID, 2, "2.50", nil))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	historial, err := uc.HistoryFor(ctx, producto.ID)
	require.NoError(t, err)
	require.Len(t, historial, n)

	lotes := make(map[string]struct{}, n)
	var suma int64
	for _, r := range historial {
		lotes[r.BatchNumber] = struct{}{}
		suma += r.Quantity
	}
	assert.Len(t, lotes, n, "todos los lotes deben ser distintos")
	assert.Equal(t, int64(2*n), suma)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reintento por colisión de lote
// ──────────────────────────────────────────────────────────────────────────────

// generadorSecuencial devuelve lotes prefijados, para forzar una colisión con
// un lote ya persistido (simula otro proceso escribiendo sobre la misma
// restricción única).
type generadorSecuencial struct {
	mu    sync.Mutex
	lotes []string
}

func (g *generadorSecuencial) Next(_ time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.lotes) == 0 {
		return "", domain.ErrGenerationConflict
	}
	lote := g.lotes[0]
	g.lotes = g.lotes[1:]
	return lote, nil
}

// TestRecordInbound_ReintentoPorLoteDuplicado ante un duplicado en la
// restricción única se regenera el lote y se reintenta exactamente una vez.
func TestRecordInbound_ReintentoPorLoteDuplicado(t *testing.T) {
	store := memory.NewStore()
	producto := &entity.Product{ID: "p-001", SKU: "SKU-001", Name: "Tornillo M8"}
	require.NoError(t, store.Products().Create(producto))

	// Otro proceso ya escribió el lote "IN202608280001".
	require.NoError(t, store.Records().Create(&entity.InboundRecord{
		ProductID:   producto.ID,
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("1.00"),
		TotalPrice:  decimal.RequireFromString("1.00"),
		BatchNumber: "IN202608280001",
		InboundDate: d1,
		Status:      entity.InboundStatusRecorded,
	}))

	gen := &generadorSecuencial{lotes: []string{"IN202608280001", "IN202608280002"}}
	uc := ledger.NewRecordInboundUseCase(store, store.Products(), store.Records(), gen, relojFijo)

	rec, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 5, "2.00", nil))
	require.NoError(t, err, "la colisión debe resolverse con un único reintento")
	assert.Equal(t, "IN202608280002", rec.BatchNumber)
}

// TestRecordInbound_SegundaColisionSePropaga si el reintento también colisiona,
// el error se propaga al llamador (no hay más reintentos).
func TestRecordInbound_SegundaColisionSePropaga(t *testing.T) {
	store := memory.NewStore()
	producto := &entity.Product{ID: "p-001", SKU: "SKU-001", Name: "Tornillo M8"}
	require.NoError(t, store.Products().Create(producto))

	for _, lote := range []string{"IN202608280001", "IN202608280002"} {
		require.NoError(t, store.Records().Create(&entity.InboundRecord{
			ProductID:   producto.ID,
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("1.00"),
			TotalPrice:  decimal.RequireFromString("1.00"),
			BatchNumber: lote,
			InboundDate: d1,
			Status:      entity.InboundStatusRecorded,
		}))
	}

	gen := &generadorSecuencial{lotes: []string{"IN202608280001", "IN202608280002"}}
	uc := ledger.NewRecordInboundUseCase(store, store.Products(), store.Records(), gen, relojFijo)

	_, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 5, "2.00", nil))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestRecordInbound_AgotamientoDeLotes el agotamiento de la secuencia del
// periodo llega al llamador como GenerationConflict.
func TestRecordInbound_AgotamientoDeLotes(t *testing.T) {
	store := memory.NewStore()
	producto := &entity.Product{ID: "p-001", SKU: "SKU-001", Name: "Tornillo M8"}
	require.NoError(t, store.Products().Create(producto))

	gen := &generadorSecuencial{} // sin lotes disponibles
	uc := ledger.NewRecordInboundUseCase(store, store.Products(), store.Records(), gen, relojFijo)

	_, err := uc.RecordInbound(context.Background(), entrada(producto.ID, 5, "2.00", nil))
	assert.ErrorIs(t, err, domain.ErrGenerationConflict)

	historial, err := uc.HistoryFor(context.Background(), producto.ID)
	require.NoError(t, err)
	assert.Empty(t, historial)
}
