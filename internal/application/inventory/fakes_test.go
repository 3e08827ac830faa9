package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula la base de datos: stock por clave (variante, bodega) y el
// libro de movimientos. memTxRunner serializa cada transacción con un mutex y
// restaura un snapshot si la función devuelve error, emulando el Rollback.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	stocks    map[string]*entity.StockRecord
	movements []*entity.Movement
}

func newMemStore() *memStore {
	return &memStore{stocks: map[string]*entity.StockRecord{}}
}

func stockKey(variantID, warehouseID string) string {
	return variantID + "|" + warehouseID
}

func (s *memStore) snapshot() (map[string]*entity.StockRecord, int) {
	stocks := make(map[string]*entity.StockRecord, len(s.stocks))
	for k, v := range s.stocks {
		cp := *v
		stocks[k] = &cp
	}
	return stocks, len(s.movements)
}

func (s *memStore) restore(stocks map[string]*entity.StockRecord, nMovements int) {
	s.stocks = stocks
	s.movements = s.movements[:nMovements]
}

// available devuelve el disponible actual de una clave (cero si no existe).
func (s *memStore) available(variantID, warehouseID string) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.stocks[stockKey(variantID, warehouseID)]; ok {
		return rec.Available
	}
	return decimal.Zero
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// ── StockRecordRepository ────────────────────────────────────────────────────

type memStockRepo struct{ s *memStore }

func (r *memStockRepo) get(variantID, warehouseID string) (*entity.StockRecord, error) {
	if rec, ok := r.s.stocks[stockKey(variantID, warehouseID)]; ok {
		cp := *rec
		return &cp, nil
	}
	// Creación perezosa: la clave inexistente nace en cero
	return &entity.StockRecord{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		Available:   decimal.Zero,
		Reserved:    decimal.Zero,
	}, nil
}

func (r *memStockRepo) Get(variantID, warehouseID string) (*entity.StockRecord, error) {
	return r.get(variantID, warehouseID)
}

func (r *memStockRepo) GetForUpdate(variantID, warehouseID string) (*entity.StockRecord, error) {
	// El mutex del txRunner ya serializa; aquí no hay bloqueo por fila
	return r.get(variantID, warehouseID)
}

func (r *memStockRepo) Upsert(record *entity.StockRecord) error {
	cp := *record
	r.s.stocks[stockKey(record.VariantID, record.WarehouseID)] = &cp
	return nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(movement *entity.Movement) error {
	cp := *movement
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) matching(filter repository.MovementFilter) []*entity.Movement {
	out := []*entity.Movement{}
	for _, m := range r.s.movements {
		if filter.WarehouseID != "" && m.WarehouseID != filter.WarehouseID {
			continue
		}
		if filter.VariantID != "" && m.VariantID != filter.VariantID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		out = append(out, m)
	}
	// Mismo orden que la consulta SQL: created_at DESC, id ASC
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	all := r.matching(filter)
	if filter.Offset >= len(all) {
		return []*entity.Movement{}, nil
	}
	all = all[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(all) {
		all = all[:filter.Limit]
	}
	out := make([]*entity.Movement, 0, len(all))
	for _, m := range all {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memMovementRepo) Count(filter repository.MovementFilter) (int, error) {
	f := filter
	f.Limit = 0
	f.Offset = 0
	return len(r.matching(f)), nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRecordRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	stocks, nMov := t.s.snapshot()
	err := fn(&memMovementRepo{s: t.s}, &memStockRepo{s: t.s})
	if err != nil {
		t.s.restore(stocks, nMov)
		return err
	}
	return nil
}

// ── Catálogos de solo lectura ────────────────────────────────────────────────

type memVariantRepo struct {
	variants map[string]*entity.ProductVariant
}

func (r *memVariantRepo) GetByID(id string) (*entity.ProductVariant, error) {
	if v, ok := r.variants[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r *memVariantRepo) GetBySKUOrCode(code string) (*entity.ProductVariant, error) {
	for _, v := range r.variants {
		if v.SKU == code || (v.Code != "" && v.Code == code) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *memWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	if w, ok := r.warehouses[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r *memWarehouseRepo) ListActive(limit, offset int) ([]*entity.Warehouse, error) {
	out := []*entity.Warehouse{}
	for _, w := range r.warehouses {
		if w.Active {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if offset >= len(out) {
		return []*entity.Warehouse{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Fixture ──────────────────────────────────────────────────────────────────

// IDs fijos del escenario de pruebas: dos bodegas y tres variantes de tela.
const (
	whBodega   = "wh-01-bodega"
	whSala     = "wh-02-sala"
	whCerrada  = "wh-03-cerrada"
	varTela    = "var-tela-roja"
	varHilo    = "var-hilo-azul"
	varRetirda = "var-tela-retirada"
)

type fixture struct {
	store      *memStore
	variants   *memVariantRepo
	warehouses *memWarehouseRepo
	recorder   *inventory.RegisterMovementUseCase
	transfer   *inventory.TransferUseCase
	batch      *inventory.BatchIntakeUseCase
	imports    *inventory.BulkImportUseCase
}

func newFixture() *fixture {
	store := newMemStore()
	variants := &memVariantRepo{variants: map[string]*entity.ProductVariant{
		varTela: {
			ID: varTela, ProductID: "prod-tela", ProductName: "Tela Premium",
			SKU: "TELA-ROJA-150", Code: "T-001", Color: "Rojo", Measure: "1.50m",
			Unit: entity.UnitMETER, Active: true,
		},
		varHilo: {
			ID: varHilo, ProductID: "prod-hilo", ProductName: "Hilo Industrial",
			SKU: "HILO-AZUL", Code: "H-204", Color: "Azul",
			Unit: entity.UnitUNIT, Active: true,
		},
		varRetirda: {
			ID: varRetirda, ProductID: "prod-tela", ProductName: "Tela Descontinuada",
			SKU: "TELA-VIEJA", Unit: entity.UnitMETER, Active: false,
		},
	}}
	warehouses := &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		whBodega:  {ID: whBodega, Code: "BOD01", Name: "Bodega Principal", Active: true},
		whSala:    {ID: whSala, Code: "SALA", Name: "Sala de Ventas", IsPointOfSale: true, Active: true},
		whCerrada: {ID: whCerrada, Code: "BOD99", Name: "Bodega Clausurada", Active: false},
	}}

	txRunner := &memTxRunner{s: store}
	recorder := inventory.NewRegisterMovementUseCase(txRunner, variants, warehouses)
	transfer := inventory.NewTransferUseCase(txRunner, variants, warehouses)
	batch := inventory.NewBatchIntakeUseCase(recorder)
	imports := inventory.NewBulkImportUseCase(variants, batch)

	return &fixture{
		store:      store,
		variants:   variants,
		warehouses: warehouses,
		recorder:   recorder,
		transfer:   transfer,
		batch:      batch,
		imports:    imports,
	}
}

// seedStock deja un disponible inicial sin pasar por el caso de uso.
func (f *fixture) seedStock(variantID, warehouseID string, available int64) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.stocks[stockKey(variantID, warehouseID)] = &entity.StockRecord{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		Available:   decimal.NewFromInt(available),
		Reserved:    decimal.Zero,
		UpdatedAt:   time.Now(),
	}
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
