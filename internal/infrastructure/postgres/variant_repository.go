package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo lectura del catálogo de variantes sobre PostgreSQL.
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

const variantColumns = `id, product_id, product_name, sku, code, color, measure, material, unit, active`

// GetByID obtiene una variante por ID. Nil sin error si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get variant")
}

// GetBySKUOrCode resuelve un SKU o código interno a su variante (para
// importaciones masivas). Nil sin error si no existe.
func (r *VariantRepo) GetBySKUOrCode(code string) (*entity.ProductVariant, error) {
	query := `SELECT ` + variantColumns + ` FROM variants WHERE sku = $1 OR code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code), "get variant by code")
}

func (r *VariantRepo) scanOne(row pgx.Row, op string) (*entity.ProductVariant, error) {
	var v entity.ProductVariant
	var color, measure, material, code *string
	err := row.Scan(
		&v.ID, &v.ProductID, &v.ProductName, &v.SKU, &code,
		&color, &measure, &material, &v.Unit, &v.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if code != nil {
		v.Code = *code
	}
	if color != nil {
		v.Color = *color
	}
	if measure != nil {
		v.Measure = *measure
	}
	if material != nil {
		v.Material = *material
	}
	return &v, nil
}
