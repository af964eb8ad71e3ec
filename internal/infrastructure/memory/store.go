// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Lo usan los tests y el modo local sin base de datos; respeta los
// mismos contratos que el adaptador PostgreSQL: unicidad de batch_number,
// asignación monótona de IDs, orden (fecha, id) y atomicidad del append.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/domain/search"
)

var _ ledger.TxRunner = (*Store)(nil)

// Store almacén en memoria. Un único RWMutex protege todo el estado; Run lo
// toma en exclusiva para emular la atomicidad de una transacción: un lector
// concurrente ve el estado anterior o el posterior al append, nunca uno parcial.
type Store struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	records  []*entity.InboundRecord
	batches  map[string]struct{}
	levels   map[string]*entity.StockLevel
	nextID   int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products: make(map[string]*entity.Product),
		batches:  make(map[string]struct{}),
		levels:   make(map[string]*entity.StockLevel),
	}
}

// Products devuelve el puerto de catálogo sobre este almacén.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Records devuelve el puerto del libro de entradas sobre este almacén.
func (s *Store) Records() repository.InboundRecordRepository { return &recordRepo{s: s} }

// Stock devuelve el puerto de la proyección de stock sobre este almacén.
func (s *Store) Stock() repository.StockRepository { return &stockRepo{s: s} }

// Run emula una transacción: toma el lock en exclusiva, ejecuta fn con repos
// atados (sin volver a bloquear) y ante error restaura el estado previo.
func (s *Store) Run(_ context.Context, fn func(
	recordRepo repository.InboundRecordRepository,
	stockRepo repository.StockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prevLen := len(s.records)
	prevID := s.nextID
	prevBatches := make(map[string]struct{}, len(s.batches))
	for k := range s.batches {
		prevBatches[k] = struct{}{}
	}
	prevLevels := make(map[string]*entity.StockLevel, len(s.levels))
	for k, v := range s.levels {
		cp := *v
		prevLevels[k] = &cp
	}

	err := fn(&recordRepo{s: s, inTx: true}, &stockRepo{s: s, inTx: true})
	if err != nil {
		// Rollback
		s.records = s.records[:prevLen]
		s.nextID = prevID
		s.batches = prevBatches
		s.levels = prevLevels
		return err
	}
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type productRepo struct {
	s *Store
}

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.s.products[product.ID] = &cp
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *productRepo) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// Search busca por subcadena sobre nombre y SKU, insensible a mayúsculas y
// acentos (search.Fold), e incluye el stock actual de la proyección.
func (r *productRepo) Search(keyword string, limit int) ([]repository.ProductWithStock, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []repository.ProductWithStock
	for _, p := range r.s.products {
		if !search.Matches(p.Name, keyword) && !search.Matches(p.SKU, keyword) {
			continue
		}
		it := repository.ProductWithStock{
			ID:       p.ID,
			Name:     p.Name,
			SKU:      p.SKU,
			Category: p.Category,
			Unit:     p.Unit,
		}
		if lvl, ok := r.s.levels[p.ID]; ok {
			it.StockQuantity = lvl.Quantity
		}
		list = append(list, it)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// ── InboundRecordRepository ───────────────────────────────────────────────────

type recordRepo struct {
	s    *Store
	inTx bool
}

// Create añade el registro al libro con ID monótono. Batch duplicado devuelve
// domain.ErrDuplicate, igual que la restricción única en PostgreSQL.
func (r *recordRepo) Create(record *entity.InboundRecord) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.batches[record.BatchNumber]; ok {
		return domain.ErrDuplicate
	}
	r.s.nextID++
	record.ID = r.s.nextID
	cp := *record
	r.s.records = append(r.s.records, &cp)
	r.s.batches[record.BatchNumber] = struct{}{}
	return nil
}

// ListByProduct devuelve copias del historial ordenado por (fecha, id).
func (r *recordRepo) ListByProduct(productID string) ([]*entity.InboundRecord, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var list []*entity.InboundRecord
	for _, rec := range r.s.records {
		if rec.ProductID == productID {
			cp := *rec
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].InboundDate.Equal(list[j].InboundDate) {
			return list[i].InboundDate.Before(list[j].InboundDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// ── StockRepository ───────────────────────────────────────────────────────────

type stockRepo struct {
	s    *Store
	inTx bool
}

func (r *stockRepo) Get(productID string) (*entity.StockLevel, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	lvl, ok := r.s.levels[productID]
	if !ok {
		return &entity.StockLevel{ProductID: productID}, nil
	}
	cp := *lvl
	return &cp, nil
}

// Refresh recalcula la fila desde el libro (suma de cantidades, máxima fecha).
func (r *stockRepo) Refresh(productID string) error {
	if !r.inTx {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	lvl := &entity.StockLevel{ProductID: productID, UpdatedAt: time.Now()}
	for _, rec := range r.s.records {
		if rec.ProductID != productID {
			continue
		}
		lvl.Quantity += rec.Quantity
		if lvl.LastInboundDate == nil || rec.InboundDate.After(*lvl.LastInboundDate) {
			d := rec.InboundDate
			lvl.LastInboundDate = &d
		}
	}
	r.s.levels[productID] = lvl
	return nil
}

// ListLowStock devuelve los productos en o por debajo de su umbral, mayor
// déficit primero.
func (r *stockRepo) ListLowStock(_ context.Context) ([]repository.LowStockItem, error) {
	if !r.inTx {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var list []repository.LowStockItem
	for _, p := range r.s.products {
		var qty int64
		var last *time.Time
		if lvl, ok := r.s.levels[p.ID]; ok {
			qty = lvl.Quantity
			last = lvl.LastInboundDate
		}
		threshold := p.AlertThreshold()
		if qty > int64(threshold) {
			continue
		}
		list = append(list, repository.LowStockItem{
			ProductID:       p.ID,
			Name:            p.Name,
			SKU:             p.SKU,
			Unit:            p.Unit,
			Quantity:        qty,
			MinStockAlert:   threshold,
			LastInboundDate: last,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		di := int64(list[i].MinStockAlert) - list[i].Quantity
		dj := int64(list[j].MinStockAlert) - list[j].Quantity
		if di != dj {
			return di > dj
		}
		return list[i].SKU < list[j].SKU
	})
	return list, nil
}
