package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/search"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, category, description, unit, min_stock_alert, created_at, updated_at`

// Create persiste un nuevo producto. Si no trae ID se le asigna uno.
// name_norm y sku_norm guardan el texto plegado con search.Fold; la búsqueda
// compara siempre contra estas columnas.
func (r *ProductRepo) Create(product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products
			(id, sku, name, category, description, unit, min_stock_alert,
			 created_at, updated_at, name_norm, sku_norm)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Description,
		product.Unit, product.MinStockAlert, product.CreatedAt, product.UpdatedAt,
		search.Fold(product.Name), search.Fold(product.SKU),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetBySKU obtiene un producto por su SKU (único).
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, sku))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Description,
		&p.Unit, &p.MinStockAlert, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Search busca por subcadena sobre nombre y SKU, insensible a mayúsculas y
// acentos, e incluye el stock actual desde la fila desnormalizada. La palabra
// clave se pliega con search.Fold y se compara contra las columnas
// normalizadas: el mismo contrato que el adaptador en memoria.
func (r *ProductRepo) Search(keyword string, limit int) ([]repository.ProductWithStock, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.category, p.unit, COALESCE(s.quantity, 0)
		FROM products p
		LEFT JOIN inventory_stock s ON s.product_id = p.id
		WHERE p.name_norm LIKE '%' || $1 || '%' OR p.sku_norm LIKE '%' || $1 || '%'
		ORDER BY p.name ASC
		LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, search.Fold(keyword), limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductWithStock
	for rows.Next() {
		var it repository.ProductWithStock
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Unit, &it.StockQuantity); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
