package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

var _ repository.StockQueryRepository = (*StockQueryRepo)(nil)

// StockQueryRepo consultas de solo lectura para pantallas de stock y alertas.
type StockQueryRepo struct {
	q Querier
}

// NewStockQueryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockQueryRepository(q Querier) *StockQueryRepo {
	return &StockQueryRepo{q: q}
}

// unaccentExpr pliega acentos del español en SQL sin requerir la extensión
// unaccent; el texto de búsqueda llega ya plegado desde la aplicación.
const unaccentExpr = `lower(translate(%s, 'áéíóúñÁÉÍÓÚÑ', 'aeiounAEIOUN'))`

// Search devuelve las filas de stock que satisfacen el filtro más el total
// sin paginar.
func (r *StockQueryRepo) Search(ctx context.Context, filter repository.StockFilter) ([]repository.StockView, int, error) {
	base := `
		FROM stock_records s
		JOIN variants v   ON v.id = s.variant_id
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE w.active`
	var args []any
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		base += fmt.Sprintf(" AND s.warehouse_id = $%d", len(args))
	}
	if filter.SKU != "" {
		args = append(args, filter.SKU)
		base += fmt.Sprintf(" AND v.sku = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		cols := fmt.Sprintf(unaccentExpr, "concat_ws(' ', v.product_name, v.sku, v.color, v.measure, v.material)")
		base += fmt.Sprintf(" AND %s LIKE $%d", cols, n)
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) "+base, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock: %w", err)
	}

	query := `
		SELECT v.id, v.sku, v.product_name, v.color, v.measure, v.material, v.unit,
		       w.id, w.code, s.available_quantity, s.reserved_quantity, s.updated_at ` +
		base + fmt.Sprintf(" ORDER BY v.product_name, v.sku, w.code LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("search stock: %w", err)
	}
	defer rows.Close()

	var list []repository.StockView
	for rows.Next() {
		var it repository.StockView
		var color, measure, material *string
		if err := rows.Scan(&it.VariantID, &it.SKU, &it.ProductName, &color, &measure, &material, &it.Unit,
			&it.WarehouseID, &it.WarehouseCode, &it.Available, &it.Reserved, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan stock view: %w", err)
		}
		if color != nil {
			it.Color = *color
		}
		if measure != nil {
			it.Measure = *measure
		}
		if material != nil {
			it.Material = *material
		}
		list = append(list, it)
	}
	return list, total, rows.Err()
}

// ListWithThresholds devuelve cada (variante, bodega) con existencias junto al
// mínimo configurado, con prioridad variante > producto (NULL si no hay
// configuración y aplica el default por unidad en la capa de aplicación).
func (r *StockQueryRepo) ListWithThresholds(ctx context.Context, warehouseID string) ([]repository.AlertCandidate, error) {
	query := `
		SELECT v.id, v.sku, v.product_name, v.unit, w.id, w.code,
		       s.available_quantity,
		       COALESCE(tv.minimum_quantity,  tp.minimum_quantity),
		       COALESCE(tv.critical_quantity, tp.critical_quantity)
		FROM stock_records s
		JOIN variants v   ON v.id = s.variant_id
		JOIN warehouses w ON w.id = s.warehouse_id
		LEFT JOIN minimum_thresholds tv ON tv.variant_id = v.id
		LEFT JOIN minimum_thresholds tp ON tp.product_id = v.product_id AND tp.variant_id IS NULL
		WHERE w.active AND v.active`
	args := []any{}
	if warehouseID != "" {
		args = append(args, warehouseID)
		query += fmt.Sprintf(" AND s.warehouse_id = $%d", len(args))
	}
	query += " ORDER BY v.sku, w.code"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alert candidates: %w", err)
	}
	defer rows.Close()

	var list []repository.AlertCandidate
	for rows.Next() {
		var c repository.AlertCandidate
		if err := rows.Scan(&c.VariantID, &c.SKU, &c.ProductName, &c.Unit, &c.WarehouseID, &c.WarehouseCode,
			&c.Available, &c.Minimum, &c.Critical); err != nil {
			return nil, fmt.Errorf("scan alert candidate: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
