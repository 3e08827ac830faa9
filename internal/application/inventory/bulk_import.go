package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// BulkImportUseCase adapta filas ya parseadas de un archivo (SKU/código +
// cantidad) a un lote de ingreso. La mecánica de parseo del archivo Excel es
// de otro componente: aquí las filas llegan normalizadas. Filas con código
// irresoluble o cantidad no numérica/no positiva se reportan como errores de
// fila y se excluyen del lote; el reporte final mezcla esos errores con los
// errores por línea del lote mismo.
type BulkImportUseCase struct {
	variantRepo repository.VariantRepository
	batch       *BatchIntakeUseCase
}

// NewBulkImportUseCase construye el caso de uso.
func NewBulkImportUseCase(variantRepo repository.VariantRepository, batch *BatchIntakeUseCase) *BulkImportUseCase {
	return &BulkImportUseCase{variantRepo: variantRepo, batch: batch}
}

// ImportRow una fila parseada del archivo.
type ImportRow struct {
	CodeOrSKU string
	Quantity  string
}

// ImportInput entrada de la importación.
type ImportInput struct {
	ActorID     string
	WarehouseID string
	Reason      string
	Reference   string
	Rows        []ImportRow
}

// ImportFromRequest adapta el request HTTP al caso de uso.
func (uc *BulkImportUseCase) ImportFromRequest(ctx context.Context, actorID string, in dto.ImportRequest) (*dto.BatchResultResponse, error) {
	rows := make([]ImportRow, 0, len(in.Rows))
	for _, r := range in.Rows {
		rows = append(rows, ImportRow{CodeOrSKU: r.CodeOrSKU, Quantity: r.Quantity})
	}
	return uc.Import(ctx, ImportInput{
		ActorID:     actorID,
		WarehouseID: in.WarehouseID,
		Reason:      in.Reason,
		Reference:   in.Reference,
		Rows:        rows,
	})
}

// Import resuelve cada fila contra el catálogo, arma el lote con las filas
// válidas y delega en BatchIntakeUseCase. El índice de línea del reporte es
// siempre el de la fila original del archivo.
func (uc *BulkImportUseCase) Import(ctx context.Context, input ImportInput) (*dto.BatchResultResponse, error) {
	if input.WarehouseID == "" || input.Reason == "" || len(input.Rows) == 0 {
		return nil, domain.ErrInvalidInput
	}

	rowErrors := []dto.BatchLineError{}
	lines := make([]BatchLineInput, 0, len(input.Rows))
	for i, row := range input.Rows {
		qty, err := decimal.NewFromString(row.Quantity)
		if err != nil || !qty.GreaterThan(decimal.Zero) {
			rowErrors = append(rowErrors, dto.BatchLineError{
				Line:    i,
				Code:    "INVALID_QUANTITY",
				Message: "cantidad no numérica o no positiva: " + row.Quantity,
			})
			continue
		}
		variant, err := uc.variantRepo.GetBySKUOrCode(row.CodeOrSKU)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			rowErrors = append(rowErrors, dto.BatchLineError{
				Line:    i,
				Code:    "UNKNOWN_CODE",
				Message: "código o SKU desconocido: " + row.CodeOrSKU,
			})
			continue
		}
		lines = append(lines, BatchLineInput{Line: i, VariantID: variant.ID, Quantity: qty})
	}

	if len(lines) == 0 {
		// Ninguna fila válida: reporte solo con errores de resolución, sin lote
		return &dto.BatchResultResponse{Applied: []dto.BatchLineApplied{}, Errors: rowErrors}, nil
	}

	result, err := uc.batch.Process(ctx, BatchInput{
		ActorID:     input.ActorID,
		WarehouseID: input.WarehouseID,
		Reason:      input.Reason,
		Reference:   input.Reference,
		Lines:       lines,
	})
	if err != nil {
		return nil, err
	}
	result.Errors = append(rowErrors, result.Errors...)
	return result, nil
}
