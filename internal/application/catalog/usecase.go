package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/projection"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

const searchLimit = 20

// CatalogUseCase consultas de solo lectura sobre el catálogo de productos:
// búsqueda por palabra clave y detalle con snapshot de stock.
type CatalogUseCase struct {
	productRepo repository.ProductRepository
	snapshots   *projection.SnapshotUseCase
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ProductRepository, snapshots *projection.SnapshotUseCase) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, snapshots: snapshots}
}

// Search busca productos por subcadena sobre nombre y SKU, insensible a
// mayúsculas y acentos. Palabra clave vacía devuelve lista vacía.
func (uc *CatalogUseCase) Search(ctx context.Context, keyword string) ([]dto.ProductSearchResult, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []dto.ProductSearchResult{}, nil
	}
	items, err := uc.productRepo.Search(keyword, searchLimit)
	if err != nil {
		return nil, err
	}
	results := make([]dto.ProductSearchResult, 0, len(items))
	for _, it := range items {
		results = append(results, dto.ProductSearchResult{
			ID:            it.ID,
			Name:          it.Name,
			SKU:           it.SKU,
			Category:      it.Category,
			Unit:          it.Unit,
			StockQuantity: it.StockQuantity,
		})
	}
	return results, nil
}

// Detail devuelve el producto con su snapshot de stock derivado del libro.
// Acepta el ID del producto o su SKU (ambos únicos).
func (uc *CatalogUseCase) Detail(ctx context.Context, idOrSKU string) (*dto.ProductDetailResponse, error) {
	product, err := uc.productRepo.GetByID(idOrSKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		product, err = uc.productRepo.GetBySKU(idOrSKU)
		if err != nil {
			return nil, err
		}
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	snapshot, err := uc.snapshots.SnapshotFor(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductDetailResponse{
		ID:            product.ID,
		Name:          product.Name,
		SKU:           product.SKU,
		Category:      product.Category,
		Description:   product.Description,
		Unit:          product.Unit,
		StockQuantity: snapshot.Quantity,
		MinStockAlert: snapshot.MinStockAlert,
		LowStock:      snapshot.LowStock,
	}
	if snapshot.LastInboundDate != nil {
		out.LastInboundDate = snapshot.LastInboundDate.Format(time.DateOnly)
	}
	return out, nil
}
