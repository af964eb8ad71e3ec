package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un registro de entrada. El libro es append-only: no existe
// cancelación ni reverso; una corrección se registra como entrada compensatoria.
const (
	InboundStatusRecorded = "recorded"
)

// InboundRecord representa una transacción de entrada (recepción) de mercancía.
// Se crea de forma atómica y nunca se actualiza ni se elimina.
type InboundRecord struct {
	ID                int64 // asignado de forma monótona por el almacén
	ProductID         string
	Quantity          int64           // > 0
	UnitPrice         decimal.Decimal // positivo, máximo 2 decimales
	TotalPrice        decimal.Decimal // Quantity * UnitPrice, exacto
	BatchNumber       string          // único, asignado en la creación
	Supplier          string
	WarehouseLocation string
	InboundDate       time.Time // fecha calendario; por defecto la fecha de envío
	Notes             string
	Status            string
	CreatedAt         time.Time
}
