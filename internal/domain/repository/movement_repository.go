package repository

import (
	"time"

	"github.com/tu-usuario/stock-engine/internal/domain/entity"
)

// MovementFilter filtros para el historial de movimientos.
type MovementFilter struct {
	WarehouseID string
	VariantID   string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (append-only: sin Update ni Delete).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter) ([]*entity.Movement, error)
	Count(filter MovementFilter) (int, error)
}
