package ledger

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/money"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// RecordInboundUseCase registra entradas de inventario de forma transaccional:
// valida, calcula el total vía money, obtiene número de lote y persiste el
// registro junto con el refresco de la fila de stock en una sola transacción.
type RecordInboundUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	recordRepo  repository.InboundRecordRepository
	batches     BatchGenerator
	now         func() time.Time

	// Serializa el append por producto: garantiza unicidad de lote y evita
	// lost updates sobre la fila desnormalizada. Las lecturas y las escrituras
	// sobre otros productos corren en paralelo.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRecordInboundUseCase construye el caso de uso. clock puede ser nil para
// usar time.Now (se inyecta en tests).
func NewRecordInboundUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	recordRepo repository.InboundRecordRepository,
	batches BatchGenerator,
	clock func() time.Time,
) *RecordInboundUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &RecordInboundUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		recordRepo:  recordRepo,
		batches:     batches,
		now:         clock,
		locks:       make(map[string]*sync.Mutex),
	}
}

// RecordInboundInput entrada para registrar una recepción de mercancía.
type RecordInboundInput struct {
	ProductID         string
	Quantity          int64
	UnitPrice         decimal.Decimal
	Supplier          string
	WarehouseLocation string
	InboundDate       *time.Time // nil = fecha de envío
	Notes             string
}

// RecordInbound valida la entrada y la añade al libro. Todo o nada: un fallo
// de validación no produce ninguna mutación. Una colisión de número de lote
// en la restricción única (fallo interno) se reintenta una sola vez con un
// lote regenerado antes de propagarse.
func (uc *RecordInboundUseCase) RecordInbound(ctx context.Context, input RecordInboundInput) (*entity.InboundRecord, error) {
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if input.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if err := money.ValidateUnitPrice(input.UnitPrice); err != nil {
		return nil, err
	}

	now := uc.now()
	inboundDate := calendarDay(now)
	if input.InboundDate != nil {
		inboundDate = calendarDay(*input.InboundDate)
	}

	record := &entity.InboundRecord{
		ProductID:         product.ID,
		Quantity:          input.Quantity,
		UnitPrice:         input.UnitPrice,
		TotalPrice:        money.Total(input.Quantity, input.UnitPrice),
		Supplier:          input.Supplier,
		WarehouseLocation: input.WarehouseLocation,
		InboundDate:       inboundDate,
		Notes:             input.Notes,
		Status:            entity.InboundStatusRecorded,
		CreatedAt:         now,
	}

	lock := uc.productLock(product.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.appendWithRetry(ctx, record, now); err != nil {
		return nil, err
	}
	return record, nil
}

// appendWithRetry intenta el append transaccional; ante un duplicado de lote
// (carrera con otro proceso sobre la misma restricción única) regenera el
// número y reintenta exactamente una vez.
func (uc *RecordInboundUseCase) appendWithRetry(ctx context.Context, record *entity.InboundRecord, now time.Time) error {
	batch, err := uc.batches.Next(now)
	if err != nil {
		return err
	}
	record.BatchNumber = batch

	err = uc.append(ctx, record)
	if !errors.Is(err, domain.ErrDuplicate) {
		return err
	}

	batch, genErr := uc.batches.Next(now)
	if genErr != nil {
		return genErr
	}
	record.BatchNumber = batch
	return uc.append(ctx, record)
}

// append inserta el registro y refresca la fila desnormalizada de stock en la
// misma transacción (paso de actualización explícito y auditable; la fila
// jamás se escribe fuera de aquí).
func (uc *RecordInboundUseCase) append(ctx context.Context, record *entity.InboundRecord) error {
	return uc.txRunner.Run(ctx, func(
		recordRepo repository.InboundRecordRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := recordRepo.Create(record); err != nil {
			return err
		}
		return stockRepo.Refresh(record.ProductID)
	})
}

// HistoryFor devuelve el historial de entradas de un producto ordenado por
// (fecha de entrada asc, id asc).
func (uc *RecordInboundUseCase) HistoryFor(ctx context.Context, productID string) ([]*entity.InboundRecord, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.recordRepo.ListByProduct(productID)
}

// calendarDay trunca al día calendario del reloj, no al día UTC: la fecha de
// entrada y el componente de fecha del lote provienen del mismo reloj y deben
// coincidir en cualquier zona horaria.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (uc *RecordInboundUseCase) productLock(productID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[productID] = l
	}
	return l
}
