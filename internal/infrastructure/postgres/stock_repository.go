package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con
// pool o tx). inventory_stock es una proyección del libro: Refresh la
// recalcula desde inbound_records y solo se llama dentro de la transacción
// de registro de entrada.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la fila de stock de un producto. Sin fila = stock cero.
func (r *StockRepo) Get(productID string) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, quantity, last_inbound_date, updated_at
		FROM inventory_stock WHERE product_id = $1`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.LastInboundDate, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Refresh recalcula la fila desde el libro de entradas (suma de cantidades,
// máxima fecha). Nunca se escribe un valor que no provenga del libro.
func (r *StockRepo) Refresh(productID string) error {
	query := `
		INSERT INTO inventory_stock (product_id, quantity, last_inbound_date, updated_at)
		SELECT product_id, SUM(quantity), MAX(inbound_date), now()
		FROM inbound_records WHERE product_id = $1
		GROUP BY product_id
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              last_inbound_date = EXCLUDED.last_inbound_date,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productID)
	if err != nil {
		return fmt.Errorf("refresh stock: %w", err)
	}
	return nil
}

// ListLowStock devuelve los productos en o por debajo de su umbral de alerta
// (umbral propio o el por defecto del sistema), mayor déficit primero.
func (r *StockRepo) ListLowStock(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.unit,
		       COALESCE(s.quantity, 0),
		       COALESCE(p.min_stock_alert, $1),
		       s.last_inbound_date
		FROM products p
		LEFT JOIN inventory_stock s ON s.product_id = p.id
		WHERE COALESCE(s.quantity, 0) <= COALESCE(p.min_stock_alert, $1)
		ORDER BY COALESCE(p.min_stock_alert, $1) - COALESCE(s.quantity, 0) DESC`
	rows, err := r.q.Query(ctx, query, entity.DefaultMinStockAlert)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.SKU, &it.Unit,
			&it.Quantity, &it.MinStockAlert, &it.LastInboundDate); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
