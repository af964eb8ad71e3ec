package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductWithStock es el resultado crudo de la búsqueda por palabra clave:
// datos de catálogo más la cantidad actual de la fila desnormalizada.
type ProductWithStock struct {
	ID            string
	Name          string
	SKU           string
	Category      string
	Unit          string
	StockQuantity int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// El catálogo es de solo lectura para el núcleo: las entradas lo referencian,
// nunca lo mutan.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// Search busca por subcadena sobre nombre y SKU, insensible a mayúsculas.
	Search(keyword string, limit int) ([]ProductWithStock, error)
}
