package inventory

import (
	"context"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
	"github.com/tu-usuario/stock-engine/pkg/normalize"
)

// StockQueryUseCase consulta de stock actual para las pantallas de inventario.
// Solo lectura: la verdad del stock vive en el ledger y el cliente debe
// reconsultar después de cada mutación.
type StockQueryUseCase struct {
	queryRepo repository.StockQueryRepository
}

// NewStockQueryUseCase construye el caso de uso.
func NewStockQueryUseCase(queryRepo repository.StockQueryRepository) *StockQueryUseCase {
	return &StockQueryUseCase{queryRepo: queryRepo}
}

// StockQuery filtros de la consulta.
type StockQuery struct {
	WarehouseID string
	SKU         string
	Query       string // búsqueda libre sobre producto/variante
	Page        dto.PageRequest
}

// Search devuelve el stock filtrado por bodega, SKU y/o texto libre. El texto
// se normaliza sin acentos antes de consultar (nombres en español).
func (uc *StockQueryUseCase) Search(ctx context.Context, q StockQuery) (*dto.StockListResponse, error) {
	q.Page.DefaultPage()

	items, total, err := uc.queryRepo.Search(ctx, repository.StockFilter{
		WarehouseID: q.WarehouseID,
		SKU:         q.SKU,
		Query:       normalize.Fold(q.Query),
		Limit:       q.Page.Limit,
		Offset:      q.Page.Offset,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.StockItemResponse{
			VariantID:     it.VariantID,
			SKU:           it.SKU,
			ProductName:   it.ProductName,
			Color:         it.Color,
			Measure:       it.Measure,
			Material:      it.Material,
			Unit:          it.Unit,
			WarehouseID:   it.WarehouseID,
			WarehouseCode: it.WarehouseCode,
			Available:     it.Available,
			Reserved:      it.Reserved,
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return &dto.StockListResponse{
		Items:  out,
		Total:  total,
		Limit:  q.Page.Limit,
		Offset: q.Page.Offset,
	}, nil
}
