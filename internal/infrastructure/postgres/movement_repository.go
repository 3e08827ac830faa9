package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y consulta: los movimientos nunca se
// editan ni borran.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, batch_id, variant_id, warehouse_id, destination_warehouse_id,
	linked_movement_id, type, quantity, stock_before, stock_after, reason, reference, actor_id, created_at`

// Create persiste un movimiento del libro.
func (r *MovementRepo) Create(m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.BatchID, m.VariantID, m.WarehouseID, nullable(m.DestinationWarehouseID),
		nullable(m.LinkedMovementID), m.Type, m.Quantity, m.StockBefore, m.StockAfter,
		m.Reason, nullable(m.Reference), m.ActorID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID. Nil sin error si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List lista movimientos según el filtro, más recientes primero.
func (r *MovementRepo) List(filter repository.MovementFilter) ([]*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE 1=1`
	where, args := movementWhere(filter)
	query += where
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Count cuenta los movimientos que satisfacen el filtro (para paginación).
func (r *MovementRepo) Count(filter repository.MovementFilter) (int, error) {
	query := `SELECT count(*) FROM movements WHERE 1=1`
	where, args := movementWhere(filter)
	query += where

	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return total, nil
}

// movementWhere arma las condiciones dinámicas compartidas por List y Count.
func movementWhere(filter repository.MovementFilter) (string, []any) {
	var (
		where string
		args  []any
	)
	if filter.WarehouseID != "" {
		args = append(args, filter.WarehouseID)
		where += fmt.Sprintf(" AND warehouse_id = $%d", len(args))
	}
	if filter.VariantID != "" {
		args = append(args, filter.VariantID)
		where += fmt.Sprintf(" AND variant_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	return where, args
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var dest, linked, reference *string
	err := row.Scan(
		&m.ID, &m.BatchID, &m.VariantID, &m.WarehouseID, &dest,
		&linked, &m.Type, &m.Quantity, &m.StockBefore, &m.StockAfter,
		&m.Reason, &reference, &m.ActorID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if dest != nil {
		m.DestinationWarehouseID = *dest
	}
	if linked != nil {
		m.LinkedMovementID = *linked
	}
	if reference != nil {
		m.Reference = *reference
	}
	return &m, nil
}

// nullable convierte "" en NULL para columnas opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
