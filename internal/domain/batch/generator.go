// Package batch genera los números de lote de las entradas de inventario.
//
// Formato: IN + fecha (YYYYMMDD) + secuencia de 4 dígitos, ej. "IN202608280001".
// El identificador es ordenable lexicográficamente por fecha de creación y
// trazable a simple vista por su componente de fecha. La unicidad dentro del
// proceso la garantiza un contador por periodo protegido por mutex; el almacén
// añade además una restricción de unicidad sobre batch_number al escribir.
package batch

import (
	"fmt"
	"sync"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain"
)

const (
	prefix    = "IN"
	dayLayout = "20060102"
	seqMax    = 9999 // 4 dígitos por periodo
)

// Generator produce números de lote únicos y ordenables. Seguro para uso
// concurrente. Se inyecta como servicio explícito (no singleton) para poder
// fijar reloj y secuencia inicial en tests.
type Generator struct {
	mu     sync.Mutex
	period string // YYYYMMDD del último lote emitido
	seq    int
}

// NewGenerator construye un generador con el contador en cero.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewGeneratorAt construye un generador posicionado en un periodo y secuencia
// dados (para tests de agotamiento y de continuidad entre periodos).
func NewGeneratorAt(ts time.Time, seq int) *Generator {
	return &Generator{period: ts.Format(dayLayout), seq: seq}
}

// Next emite el siguiente número de lote para el instante dado.
// Si dos envíos compiten dentro del mismo periodo, el contador monótono los
// desambigua. Devuelve domain.ErrGenerationConflict solo cuando la secuencia
// del periodo se agota; el llamador reintenta con el periodo siguiente.
func (g *Generator) Next(ts time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	period := ts.Format(dayLayout)
	// Nunca retroceder de periodo: dos llamadas del proceso jamás repiten valor
	// aunque el reloj retroceda.
	if period > g.period {
		g.period = period
		g.seq = 0
	}
	if g.seq >= seqMax {
		return "", domain.ErrGenerationConflict
	}
	g.seq++
	return fmt.Sprintf("%s%s%04d", prefix, g.period, g.seq), nil
}
