package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItemResponse una fila de la consulta de stock.
type StockItemResponse struct {
	VariantID     string          `json:"variant_id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Color         string          `json:"color,omitempty"`
	Measure       string          `json:"measure,omitempty"`
	Material      string          `json:"material,omitempty"`
	Unit          string          `json:"unit"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseCode string          `json:"warehouse_code"`
	Available     decimal.Decimal `json:"available_quantity"`
	Reserved      decimal.Decimal `json:"reserved_quantity"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockListResponse página de la consulta de stock.
type StockListResponse struct {
	Items  []StockItemResponse `json:"items"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// AlertResponse una alerta de stock bajo mínimo.
type AlertResponse struct {
	VariantID     string          `json:"variant_id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	Unit          string          `json:"unit"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseCode string          `json:"warehouse_code"`
	Current       decimal.Decimal `json:"current_quantity"`
	Minimum       decimal.Decimal `json:"minimum_quantity"`
	Deficit       decimal.Decimal `json:"deficit"`
	Severity      string          `json:"severity"` // CRITICAL | BELOW_MINIMUM
}

// ThresholdRequest body para configurar un mínimo por variante o producto.
type ThresholdRequest struct {
	VariantID string          `json:"variant_id,omitempty"`
	ProductID string          `json:"product_id,omitempty"`
	Unit      string          `json:"unit" validate:"required"`
	Minimum   decimal.Decimal `json:"minimum_quantity"`
	Critical  decimal.Decimal `json:"critical_quantity"`
}
