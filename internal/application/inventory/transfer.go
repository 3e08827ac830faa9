package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// DefaultTransferReason motivo cuando el traslado llega sin uno.
const DefaultTransferReason = "Traslado entre bodegas"

// TransferUseCase compone las dos mutaciones de un traslado (salida en origen,
// entrada en destino) en una sola unidad atómica: las filas se bloquean en
// orden canónico (warehouse_id ascendente) para evitar deadlock con un
// traslado inverso concurrente, y todo corre dentro de una transacción, por lo
// que nunca queda visible un traslado a medias.
type TransferUseCase struct {
	txRunner      TxRunner
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
	}
}

// TransferInput entrada para un traslado entre bodegas.
type TransferInput struct {
	ActorID                string
	VariantID              string
	SourceWarehouseID      string
	DestinationWarehouseID string
	Quantity               decimal.Decimal
	Reason                 string
}

// TransferResult las dos patas enlazadas del traslado.
type TransferResult struct {
	Exit  *entity.Movement
	Entry *entity.Movement
}

// TransferFromRequest adapta el request HTTP al caso de uso.
func (uc *TransferUseCase) TransferFromRequest(ctx context.Context, actorID string, in dto.TransferRequest) (*TransferResult, error) {
	return uc.Transfer(ctx, TransferInput{
		ActorID:                actorID,
		VariantID:              in.VariantID,
		SourceWarehouseID:      in.SourceWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		Quantity:               in.Quantity,
		Reason:                 in.Reason,
	})
}

// Transfer descuenta de la bodega origen y suma en la destino, produciendo dos
// movimientos TRANSFER enlazados entre sí con efecto neto cero sobre el total
// de la variante. Si algo falla, la transacción revierte ambas patas.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.VariantID == "" || input.SourceWarehouseID == "" || input.DestinationWarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.SourceWarehouseID == input.DestinationWarehouseID {
		return nil, domain.ErrConflict
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	reason := input.Reason
	if reason == "" {
		reason = DefaultTransferReason
	}

	variant, err := uc.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrNotFound
	}
	for _, whID := range []string{input.SourceWarehouseID, input.DestinationWarehouseID} {
		wh, err := uc.warehouseRepo.GetByID(whID)
		if err != nil {
			return nil, err
		}
		if wh == nil {
			return nil, domain.ErrNotFound
		}
		if !wh.Active {
			return nil, domain.ErrConflict
		}
	}

	now := time.Now()
	batchID := uuid.New().String()
	exitID := uuid.New().String()
	entryID := uuid.New().String()

	var result TransferResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRecordRepository,
	) error {
		// Bloqueo en orden canónico: primero la bodega de menor id, sea origen
		// o destino, para que dos traslados inversos no se crucen en deadlock.
		first, second := input.SourceWarehouseID, input.DestinationWarehouseID
		if second < first {
			first, second = second, first
		}
		if _, err := stockRepo.GetForUpdate(input.VariantID, first); err != nil {
			return err
		}
		if _, err := stockRepo.GetForUpdate(input.VariantID, second); err != nil {
			return err
		}

		// Salida en origen; si falla (p.ej. stock insuficiente) se aborta
		// antes de tocar el destino.
		exitMov, err := applyDelta(movRepo, stockRepo, applyParams{
			actorID:          input.ActorID,
			batchID:          batchID,
			variantID:        input.VariantID,
			warehouseID:      input.SourceWarehouseID,
			destWarehouseID:  input.DestinationWarehouseID,
			linkedMovementID: entryID,
			movementID:       exitID,
			movType:          entity.MovementTypeTRANSFER,
			delta:            input.Quantity.Neg(),
			reason:           reason,
			now:              now,
		})
		if err != nil {
			return err
		}

		// Entrada en destino; cualquier error revierte también la salida.
		entryMov, err := applyDelta(movRepo, stockRepo, applyParams{
			actorID:          input.ActorID,
			batchID:          batchID,
			variantID:        input.VariantID,
			warehouseID:      input.DestinationWarehouseID,
			destWarehouseID:  input.DestinationWarehouseID,
			linkedMovementID: exitID,
			movementID:       entryID,
			movType:          entity.MovementTypeTRANSFER,
			delta:            input.Quantity,
			reason:           reason,
			now:              now,
		})
		if err != nil {
			return err
		}

		result.Exit = exitMov
		result.Entry = entryMov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
