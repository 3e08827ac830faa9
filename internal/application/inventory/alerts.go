package inventory

import (
	"context"
	"sort"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	domaininv "github.com/tu-usuario/stock-engine/internal/domain/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// AlertsUseCase monitorea el stock frente a los mínimos configurados y
// clasifica la severidad. Solo lectura sobre el ledger; nunca muta stock.
type AlertsUseCase struct {
	queryRepo     repository.StockQueryRepository
	thresholdRepo repository.ThresholdRepository
}

// NewAlertsUseCase construye el caso de uso.
func NewAlertsUseCase(queryRepo repository.StockQueryRepository, thresholdRepo repository.ThresholdRepository) *AlertsUseCase {
	return &AlertsUseCase{queryRepo: queryRepo, thresholdRepo: thresholdRepo}
}

// ListBelowMinimum devuelve las claves (variante, bodega) cuyo disponible está
// en o bajo su mínimo, con severidad y déficit, ordenadas por mayor déficit.
// El mínimo aplicable es el configurado (variante > producto) o, en su
// ausencia, el default por categoría de unidad de medida.
// warehouseID vacío considera todas las bodegas activas.
func (uc *AlertsUseCase) ListBelowMinimum(ctx context.Context, warehouseID string) ([]dto.AlertResponse, error) {
	candidates, err := uc.queryRepo.ListWithThresholds(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.AlertResponse, 0, len(candidates))
	for _, c := range candidates {
		minimum, critical := entity.DefaultThreshold(c.Unit)
		if c.Minimum != nil {
			minimum = *c.Minimum
		}
		if c.Critical != nil {
			critical = *c.Critical
		}
		severity := domaininv.ClassifyLevel(c.Available, minimum, critical)
		if severity == domaininv.SeverityNormal {
			continue
		}
		alerts = append(alerts, dto.AlertResponse{
			VariantID:     c.VariantID,
			SKU:           c.SKU,
			ProductName:   c.ProductName,
			Unit:          c.Unit,
			WarehouseID:   c.WarehouseID,
			WarehouseCode: c.WarehouseCode,
			Current:       c.Available,
			Minimum:       minimum,
			Deficit:       domaininv.Deficit(c.Available, minimum),
			Severity:      severity,
		})
	}

	// Mayor quiebre primero; crítico antes que bajo-mínimo a igual déficit
	sort.SliceStable(alerts, func(i, j int) bool {
		if !alerts[i].Deficit.Equal(alerts[j].Deficit) {
			return alerts[i].Deficit.GreaterThan(alerts[j].Deficit)
		}
		return alerts[i].Severity == domaininv.SeverityCritical && alerts[j].Severity != domaininv.SeverityCritical
	})
	return alerts, nil
}

// SetThreshold configura (o reemplaza) el mínimo de una variante o producto.
func (uc *AlertsUseCase) SetThreshold(ctx context.Context, in dto.ThresholdRequest) error {
	if in.VariantID == "" && in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidUnit(in.Unit) {
		return domain.ErrInvalidInput
	}
	if in.Minimum.IsNegative() || in.Critical.IsNegative() || in.Critical.GreaterThan(in.Minimum) {
		return domain.ErrInvalidInput
	}
	return uc.thresholdRepo.Upsert(&entity.MinimumThreshold{
		VariantID: in.VariantID,
		ProductID: in.ProductID,
		Unit:      in.Unit,
		Minimum:   in.Minimum,
		Critical:  in.Critical,
	})
}
