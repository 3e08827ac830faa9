package dto

import "github.com/shopspring/decimal"

// BatchLineRequest una línea (variante, cantidad) de un ingreso masivo.
type BatchLineRequest struct {
	VariantID string          `json:"variant_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// BatchIntakeRequest body para POST /api/inventory/batch (ingreso masivo).
type BatchIntakeRequest struct {
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	Reason      string             `json:"reason" validate:"required"`
	Reference   string             `json:"reference,omitempty"`
	Lines       []BatchLineRequest `json:"lines" validate:"required,min=1"`
}

// BatchLineApplied línea aplicada con el movimiento resultante.
type BatchLineApplied struct {
	Line       int             `json:"line"` // índice de la línea/fila original (base 0)
	VariantID  string          `json:"variant_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	MovementID string          `json:"movement_id"`
}

// BatchLineError línea rechazada con el tipo de error.
type BatchLineError struct {
	Line      int    `json:"line"`
	VariantID string `json:"variant_id,omitempty"`
	Code      string `json:"code"` // VALIDATION, NOT_FOUND, CONFLICT, UNKNOWN_CODE, INVALID_QUANTITY, INTERNAL
	Message   string `json:"message"`
}

// BatchResultResponse resultado de un lote con semántica continúa-ante-error:
// la llamada "tiene éxito" a nivel transporte aunque haya líneas fallidas;
// el caller debe inspeccionar errors[].
type BatchResultResponse struct {
	BatchID string             `json:"batch_id"`
	Applied []BatchLineApplied `json:"applied"`
	Errors  []BatchLineError   `json:"errors"`
}

// ImportRowRequest una fila ya parseada por el importador externo. La cantidad
// llega como texto: filas no numéricas se reportan como error de fila.
type ImportRowRequest struct {
	CodeOrSKU string `json:"code_or_sku" validate:"required"`
	Quantity  string `json:"quantity"`
}

// ImportRequest body para POST /api/inventory/import.
type ImportRequest struct {
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	Reason      string             `json:"reason" validate:"required"`
	Reference   string             `json:"reference,omitempty"`
	Rows        []ImportRowRequest `json:"rows" validate:"required,min=1"`
}
