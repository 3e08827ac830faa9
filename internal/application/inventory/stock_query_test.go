package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// capturingQueryRepo captura el filtro recibido para verificar la
// normalización y la paginación aplicadas por el caso de uso.
type capturingQueryRepo struct {
	lastFilter repository.StockFilter
	items      []repository.StockView
	total      int
}

func (r *capturingQueryRepo) Search(_ context.Context, filter repository.StockFilter) ([]repository.StockView, int, error) {
	r.lastFilter = filter
	return r.items, r.total, nil
}

func (r *capturingQueryRepo) ListWithThresholds(_ context.Context, _ string) ([]repository.AlertCandidate, error) {
	return nil, nil
}

// El texto libre llega al repositorio ya plegado: sin acentos y en minúsculas.
func TestStockQuery_NormalizaBusqueda(t *testing.T) {
	repo := &capturingQueryRepo{}
	uc := inventory.NewStockQueryUseCase(repo)

	_, err := uc.Search(context.Background(), inventory.StockQuery{
		WarehouseID: whBodega,
		Query:       "Algodón Café",
	})
	require.NoError(t, err)

	assert.Equal(t, "algodon cafe", repo.lastFilter.Query)
	assert.Equal(t, whBodega, repo.lastFilter.WarehouseID)
	assert.Equal(t, 20, repo.lastFilter.Limit, "paginación por defecto")
	assert.Equal(t, 0, repo.lastFilter.Offset)
}

func TestStockQuery_MapeaResultados(t *testing.T) {
	repo := &capturingQueryRepo{
		items: []repository.StockView{{
			VariantID:     varTela,
			SKU:           "TELA-ROJA-150",
			ProductName:   "Tela Premium",
			Unit:          "METER",
			WarehouseID:   whBodega,
			WarehouseCode: "BOD01",
			Available:     decimal.NewFromInt(80),
			Reserved:      decimal.NewFromInt(5),
		}},
		total: 37,
	}
	uc := inventory.NewStockQueryUseCase(repo)

	res, err := uc.Search(context.Background(), inventory.StockQuery{
		SKU:  "TELA-ROJA-150",
		Page: dto.PageRequest{Limit: 10, Offset: 30},
	})
	require.NoError(t, err)

	assert.Equal(t, 37, res.Total)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 30, res.Offset)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "TELA-ROJA-150", res.Items[0].SKU)
	assert.True(t, res.Items[0].Available.Equal(decimal.NewFromInt(80)))
}
