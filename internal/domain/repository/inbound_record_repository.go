package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// InboundRecordRepository define el puerto de persistencia del libro de
// entradas (append-only). No hay Update ni Delete: las correcciones se
// registran como entradas compensatorias.
type InboundRecordRepository interface {
	// Create persiste el registro y asigna su ID monótono. Devuelve
	// domain.ErrDuplicate si el batch_number ya existe (restricción única).
	Create(record *entity.InboundRecord) error
	// ListByProduct devuelve el historial ordenado por (inbound_date asc, id asc);
	// orden estable y determinista para analítica reproducible.
	ListByProduct(productID string) ([]*entity.InboundRecord, error)
}
