package repository

import "github.com/tu-usuario/stock-engine/internal/domain/entity"

// StockRecordRepository define el puerto para consultar/actualizar el stock
// por variante+bodega. Es el único camino de mutación de cantidades; se usa
// dentro de transacciones para garantizar consistencia.
type StockRecordRepository interface {
	Get(variantID, warehouseID string) (*entity.StockRecord, error)
	Upsert(record *entity.StockRecord) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) y serializa
	// mutaciones concurrentes sobre la misma clave.
	GetForUpdate(variantID, warehouseID string) (*entity.StockRecord, error)
}
