package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

var _ repository.ThresholdRepository = (*ThresholdRepo)(nil)

// ThresholdRepo persistencia de mínimos configurados sobre PostgreSQL.
type ThresholdRepo struct {
	q Querier
}

// NewThresholdRepository construye el adaptador. Pasar pool o tx (Querier).
func NewThresholdRepository(q Querier) *ThresholdRepo {
	return &ThresholdRepo{q: q}
}

// GetForVariant devuelve el mínimo configurado para la variante, con prioridad
// variante > producto. Nil sin error si no hay configuración.
func (r *ThresholdRepo) GetForVariant(variantID string) (*entity.MinimumThreshold, error) {
	query := `
		SELECT COALESCE(t.variant_id, ''), COALESCE(t.product_id, ''), t.unit,
		       t.minimum_quantity, t.critical_quantity
		FROM minimum_thresholds t
		LEFT JOIN variants v ON v.id = $1
		WHERE t.variant_id = $1 OR (t.product_id = v.product_id AND t.variant_id IS NULL)
		ORDER BY t.variant_id NULLS LAST
		LIMIT 1`
	var t entity.MinimumThreshold
	err := r.q.QueryRow(context.Background(), query, variantID).Scan(
		&t.VariantID, &t.ProductID, &t.Unit, &t.Minimum, &t.Critical,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get threshold: %w", err)
	}
	return &t, nil
}

// Upsert inserta o reemplaza el mínimo configurado para la variante o producto.
func (r *ThresholdRepo) Upsert(t *entity.MinimumThreshold) error {
	var query string
	var args []any
	if t.VariantID != "" {
		query = `
			INSERT INTO minimum_thresholds (variant_id, product_id, unit, minimum_quantity, critical_quantity)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5)
			ON CONFLICT (variant_id)
			DO UPDATE SET unit = EXCLUDED.unit,
			              minimum_quantity  = EXCLUDED.minimum_quantity,
			              critical_quantity = EXCLUDED.critical_quantity`
		args = []any{t.VariantID, t.ProductID, t.Unit, t.Minimum, t.Critical}
	} else {
		query = `
			INSERT INTO minimum_thresholds (product_id, unit, minimum_quantity, critical_quantity)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (product_id) WHERE variant_id IS NULL
			DO UPDATE SET unit = EXCLUDED.unit,
			              minimum_quantity  = EXCLUDED.minimum_quantity,
			              critical_quantity = EXCLUDED.critical_quantity`
		args = []any{t.ProductID, t.Unit, t.Minimum, t.Critical}
	}
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}
