package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
)

// BatchIntakeUseCase aplica un ingreso masivo ("ingreso masivo", p.ej. la
// recepción de un contenedor): una lista ordenada de líneas (variante,
// cantidad) bajo un contexto común de bodega, motivo y referencia. Cada línea
// es una entrada independiente: una línea fallida se anota y el procesamiento
// continúa; las líneas ya aplicadas quedan firmes.
//
// Las líneas duplicadas de una misma variante NO se deduplican: se aplican en
// orden y sus cantidades se acumulan, igual que si se registraran una a una.
type BatchIntakeUseCase struct {
	recorder *RegisterMovementUseCase
}

// NewBatchIntakeUseCase construye el caso de uso sobre el registrador simple.
func NewBatchIntakeUseCase(recorder *RegisterMovementUseCase) *BatchIntakeUseCase {
	return &BatchIntakeUseCase{recorder: recorder}
}

// BatchLineInput línea de entrada con su índice original (para reportes de
// importación el índice es el de la fila en el archivo).
type BatchLineInput struct {
	Line      int
	VariantID string
	Quantity  decimal.Decimal
}

// BatchInput entrada del lote.
type BatchInput struct {
	ActorID     string
	BatchID     string // vacío genera uno nuevo
	WarehouseID string
	Reason      string
	Reference   string
	Lines       []BatchLineInput
}

// ProcessFromRequest adapta el request HTTP al caso de uso.
func (uc *BatchIntakeUseCase) ProcessFromRequest(ctx context.Context, actorID string, in dto.BatchIntakeRequest) (*dto.BatchResultResponse, error) {
	lines := make([]BatchLineInput, 0, len(in.Lines))
	for i, l := range in.Lines {
		lines = append(lines, BatchLineInput{Line: i, VariantID: l.VariantID, Quantity: l.Quantity})
	}
	return uc.Process(ctx, BatchInput{
		ActorID:     actorID,
		WarehouseID: in.WarehouseID,
		Reason:      in.Reason,
		Reference:   in.Reference,
		Lines:       lines,
	})
}

// Process procesa las líneas en orden con semántica continúa-ante-error y
// devuelve el detalle por línea. El error duro solo aparece si el lote mismo
// es inválido (sin bodega, sin motivo o sin líneas).
func (uc *BatchIntakeUseCase) Process(ctx context.Context, input BatchInput) (*dto.BatchResultResponse, error) {
	if input.WarehouseID == "" || input.Reason == "" || len(input.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	batchID := input.BatchID
	if batchID == "" {
		batchID = uuid.New().String()
	}

	result := &dto.BatchResultResponse{
		BatchID: batchID,
		Applied: []dto.BatchLineApplied{},
		Errors:  []dto.BatchLineError{},
	}
	for _, line := range input.Lines {
		mov, err := uc.recorder.RegisterMovement(ctx, MovementInput{
			ActorID:     input.ActorID,
			BatchID:     batchID,
			VariantID:   line.VariantID,
			WarehouseID: input.WarehouseID,
			Type:        entity.MovementTypeENTRY,
			Quantity:    line.Quantity,
			Reason:      input.Reason,
			Reference:   input.Reference,
		})
		if err != nil {
			result.Errors = append(result.Errors, dto.BatchLineError{
				Line:      line.Line,
				VariantID: line.VariantID,
				Code:      lineErrorCode(err),
				Message:   err.Error(),
			})
			continue
		}
		result.Applied = append(result.Applied, dto.BatchLineApplied{
			Line:       line.Line,
			VariantID:  line.VariantID,
			Quantity:   line.Quantity,
			MovementID: mov.ID,
		})
	}
	return result, nil
}

// lineErrorCode clasifica el error de una línea para el reporte.
func lineErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrConflict):
		return "CONFLICT"
	}
	return "INTERNAL"
}
