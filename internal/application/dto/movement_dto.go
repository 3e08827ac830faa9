package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/inventory/movements
// (ENTRY, EXIT o ADJUSTMENT; los traslados tienen su propio endpoint).
type RegisterMovementRequest struct {
	VariantID   string          `json:"variant_id" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reason      string          `json:"reason" validate:"required"`
	Reference   string          `json:"reference,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	VariantID              string          `json:"variant_id" validate:"required"`
	SourceWarehouseID      string          `json:"source_warehouse_id" validate:"required"`
	DestinationWarehouseID string          `json:"destination_warehouse_id" validate:"required"`
	Quantity               decimal.Decimal `json:"quantity"`
	Reason                 string          `json:"reason,omitempty"`
}

// MovementResponse un movimiento del libro, con sus snapshots antes/después.
type MovementResponse struct {
	ID                     string          `json:"id"`
	BatchID                string          `json:"batch_id,omitempty"`
	VariantID              string          `json:"variant_id"`
	WarehouseID            string          `json:"warehouse_id"`
	DestinationWarehouseID string          `json:"destination_warehouse_id,omitempty"`
	LinkedMovementID       string          `json:"linked_movement_id,omitempty"`
	Type                   string          `json:"type"`
	Quantity               decimal.Decimal `json:"quantity"`
	StockBefore            decimal.Decimal `json:"stock_before"`
	StockAfter             decimal.Decimal `json:"stock_after"`
	Reason                 string          `json:"reason"`
	Reference              string          `json:"reference,omitempty"`
	ActorID                string          `json:"actor_id"`
	CreatedAt              time.Time       `json:"created_at"`
}

// NewMovementResponse mapea la entidad al DTO de respuesta.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:                     m.ID,
		BatchID:                m.BatchID,
		VariantID:              m.VariantID,
		WarehouseID:            m.WarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		LinkedMovementID:       m.LinkedMovementID,
		Type:                   m.Type,
		Quantity:               m.Quantity,
		StockBefore:            m.StockBefore,
		StockAfter:             m.StockAfter,
		Reason:                 m.Reason,
		Reference:              m.Reference,
		ActorID:                m.ActorID,
		CreatedAt:              m.CreatedAt,
	}
}

// TransferResponse las dos patas enlazadas de un traslado.
type TransferResponse struct {
	Exit  MovementResponse `json:"exit"`
	Entry MovementResponse `json:"entry"`
}

// MovementHistoryResponse página del historial de movimientos.
type MovementHistoryResponse struct {
	Records []MovementResponse `json:"records"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
	Pages   int                `json:"pages"`
}
