package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeENTRY      = "ENTRY"      // entrada
	MovementTypeEXIT       = "EXIT"       // salida
	MovementTypeTRANSFER   = "TRANSFER"   // traslado entre bodegas
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (único tipo con delta firmado libre)
)

// Movement representa un movimiento del libro de inventario. Inmutable una vez
// escrito (append-only): las correcciones son nuevos movimientos ADJUSTMENT.
// Para cada mutación de StockRecord existe exactamente un Movement con
// StockAfter = StockBefore + Quantity.
type Movement struct {
	ID                     string
	BatchID                string // agrupa las dos patas de un traslado o las líneas de un lote
	VariantID              string
	WarehouseID            string
	DestinationWarehouseID string // solo traslados: bodega destino
	LinkedMovementID       string // solo traslados: la otra pata del par
	Type                   string
	Quantity               decimal.Decimal // delta firmado: positivo entrada, negativo salida
	StockBefore            decimal.Decimal
	StockAfter             decimal.Decimal
	Reason                 string
	Reference              string // factura, contenedor, nota, etc.
	ActorID                string
	CreatedAt              time.Time
}

// ValidMovementType indica si el tipo es uno de los conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeENTRY, MovementTypeEXIT, MovementTypeTRANSFER, MovementTypeADJUSTMENT:
		return true
	}
	return false
}
