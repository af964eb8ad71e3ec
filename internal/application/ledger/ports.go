package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el append del registro y el
// refresco de la fila de stock sean atómicos: ningún lector observa un
// registro sin su total ni un append parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recordRepo repository.InboundRecordRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// BatchGenerator produce números de lote únicos y ordenables por fecha.
// Se inyecta (no singleton) para poder fijar reloj y secuencia en tests.
type BatchGenerator interface {
	Next(ts time.Time) (string, error)
}
