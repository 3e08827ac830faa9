package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockView fila denormalizada de stock para consultas de pantalla.
type StockView struct {
	VariantID     string
	SKU           string
	ProductName   string
	Color         string
	Measure       string
	Material      string
	Unit          string
	WarehouseID   string
	WarehouseCode string
	Available     decimal.Decimal
	Reserved      decimal.Decimal
	UpdatedAt     time.Time
}

// StockFilter filtros para la consulta de stock.
type StockFilter struct {
	WarehouseID string
	SKU         string
	Query       string // búsqueda libre sobre nombre/atributos, sin acentos
	Limit       int
	Offset      int
}

// AlertCandidate fila cruda para el monitor de mínimos: stock actual más el
// mínimo configurado (nil si no hay configuración y aplica el default por unidad).
type AlertCandidate struct {
	VariantID     string
	SKU           string
	ProductName   string
	Unit          string
	WarehouseID   string
	WarehouseCode string
	Available     decimal.Decimal
	Minimum       *decimal.Decimal
	Critical      *decimal.Decimal
}

// StockQueryRepository define el puerto de solo lectura para las pantallas de
// stock y alertas. Nunca muta StockRecord.
type StockQueryRepository interface {
	Search(ctx context.Context, filter StockFilter) ([]StockView, int, error)
	// ListWithThresholds devuelve cada (variante, bodega) con existencias o
	// mínimo configurado. warehouseID vacío = todas las bodegas activas.
	ListWithThresholds(ctx context.Context, warehouseID string) ([]AlertCandidate, error)
}
