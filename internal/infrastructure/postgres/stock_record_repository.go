package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL
// (usable con pool o tx).
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

// Get obtiene el stock actual de una variante en una bodega. Si la clave no
// existe devuelve un registro en cero (creación perezosa, nunca negativo).
func (r *StockRecordRepo) Get(variantID, warehouseID string) (*entity.StockRecord, error) {
	query := `
		SELECT variant_id, warehouse_id, available_quantity, reserved_quantity, updated_at
		FROM stock_records WHERE variant_id = $1 AND warehouse_id = $2`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, variantID, warehouseID).Scan(
		&s.VariantID, &s.WarehouseID, &s.Available, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroRecord(variantID, warehouseID), nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar mutaciones concurrentes sobre la misma clave. Si la clave aún no
// existe, SELECT FOR UPDATE sobre cero filas no adquiere ningún lock y dos
// primeros movimientos concurrentes se pisarían el upsert; por eso se
// materializa la fila en cero y se vuelve a seleccionar con lock.
func (r *StockRecordRepo) GetForUpdate(variantID, warehouseID string) (*entity.StockRecord, error) {
	query := `
		SELECT variant_id, warehouse_id, available_quantity, reserved_quantity, updated_at
		FROM stock_records WHERE variant_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, variantID, warehouseID).Scan(
		&s.VariantID, &s.WarehouseID, &s.Available, &s.Reserved, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		insert := `
			INSERT INTO stock_records (variant_id, warehouse_id, available_quantity, reserved_quantity, updated_at)
			VALUES ($1, $2, 0, 0, now())
			ON CONFLICT (variant_id, warehouse_id) DO NOTHING`
		if _, errIns := r.q.Exec(context.Background(), insert, variantID, warehouseID); errIns != nil {
			return nil, fmt.Errorf("init stock record: %w", errIns)
		}
		err = r.q.QueryRow(context.Background(), query, variantID, warehouseID).Scan(
			&s.VariantID, &s.WarehouseID, &s.Available, &s.Reserved, &s.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get stock record for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza las cantidades de la clave (variante, bodega).
func (r *StockRecordRepo) Upsert(record *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (variant_id, warehouse_id, available_quantity, reserved_quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (variant_id, warehouse_id)
		DO UPDATE SET available_quantity = EXCLUDED.available_quantity,
		              reserved_quantity  = EXCLUDED.reserved_quantity,
		              updated_at         = now()`
	_, err := r.q.Exec(context.Background(), query,
		record.VariantID, record.WarehouseID, record.Available, record.Reserved,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

func zeroRecord(variantID, warehouseID string) *entity.StockRecord {
	return &entity.StockRecord{
		VariantID:   variantID,
		WarehouseID: warehouseID,
		Available:   decimal.Zero,
		Reserved:    decimal.Zero,
	}
}
