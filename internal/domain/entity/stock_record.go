package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord representa el stock actual de una variante en una bodega
// (clave compuesta variante+bodega). Se crea perezosamente en cero con el
// primer movimiento y nunca se elimina. Available nunca es negativo: un
// movimiento que lo violaría se rechaza, no se recorta.
type StockRecord struct {
	VariantID   string
	WarehouseID string
	Available   decimal.Decimal
	Reserved    decimal.Decimal
	UpdatedAt   time.Time
}
