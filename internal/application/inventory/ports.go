package inventory

import (
	"context"

	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor: o se
// persisten el stock y su movimiento juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRecordRepository,
	) error) error
}
