package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.InboundRecordRepository = (*InboundRecordRepo)(nil)

// InboundRecordRepo implementación del libro de entradas sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only: solo INSERT y SELECT.
type InboundRecordRepo struct {
	q Querier
}

// NewInboundRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInboundRecordRepository(q Querier) *InboundRecordRepo {
	return &InboundRecordRepo{q: q}
}

// Create persiste el registro en un solo INSERT (atómico para lectores
// concurrentes) y asigna el ID monótono de la secuencia. Un batch_number
// repetido viola la restricción única y devuelve domain.ErrDuplicate.
func (r *InboundRecordRepo) Create(record *entity.InboundRecord) error {
	query := `
		INSERT INTO inbound_records
			(product_id, quantity, unit_price, total_price, batch_number,
			 supplier, warehouse_location, inbound_date, notes, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		record.ProductID, record.Quantity, record.UnitPrice, record.TotalPrice,
		record.BatchNumber, nullable(record.Supplier), nullable(record.WarehouseLocation),
		record.InboundDate, nullable(record.Notes), record.Status, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inbound record: %w", err)
	}
	return nil
}

// ListByProduct devuelve el historial del producto ordenado por
// (inbound_date asc, id asc): orden estable para analítica reproducible.
func (r *InboundRecordRepo) ListByProduct(productID string) ([]*entity.InboundRecord, error) {
	query := `
		SELECT id, product_id, quantity, unit_price, total_price, batch_number,
		       COALESCE(supplier, ''), COALESCE(warehouse_location, ''),
		       inbound_date, COALESCE(notes, ''), status, created_at
		FROM inbound_records
		WHERE product_id = $1
		ORDER BY inbound_date ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list inbound records: %w", err)
	}
	defer rows.Close()
	var list []*entity.InboundRecord
	for rows.Next() {
		var rec entity.InboundRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.Quantity, &rec.UnitPrice, &rec.TotalPrice,
			&rec.BatchNumber, &rec.Supplier, &rec.WarehouseLocation,
			&rec.InboundDate, &rec.Notes, &rec.Status, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inbound record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// nullable convierte cadena vacía a NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
