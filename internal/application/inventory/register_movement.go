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

// RegisterMovementUseCase registra movimientos simples de inventario
// (ENTRY, EXIT, ADJUSTMENT) de forma transaccional, con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Los traslados componen dos patas
// sobre esta misma lógica vía TransferUseCase.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	variantRepo   repository.VariantRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	variantRepo repository.VariantRepository,
	warehouseRepo repository.WarehouseRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		variantRepo:   variantRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput entrada para registrar un movimiento simple.
// Quantity siempre positiva para ENTRY/EXIT (el signo lo resuelve el tipo);
// ADJUSTMENT es el único tipo que admite un delta firmado libre, no cero.
// BatchID vacío genera uno nuevo; los lotes pasan el suyo para agrupar líneas.
type MovementInput struct {
	ActorID     string
	BatchID     string
	VariantID   string
	WarehouseID string
	Type        string
	Quantity    decimal.Decimal
	Reason      string
	Reference   string
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, actorID string, in dto.RegisterMovementRequest) (*entity.Movement, error) {
	return uc.RegisterMovement(ctx, MovementInput{
		ActorID:     actorID,
		VariantID:   in.VariantID,
		WarehouseID: in.WarehouseID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		Reference:   in.Reference,
	})
}

// RegisterMovement valida la intención, resuelve el signo según el tipo y
// aplica el delta dentro de una transacción: bloquea la fila de stock,
// verifica que el disponible no quede negativo, persiste el nuevo saldo y
// anota exactamente un movimiento con los snapshots antes/después.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	delta, err := uc.resolveDelta(input)
	if err != nil {
		return nil, err
	}
	if err := uc.checkCollaborators(input); err != nil {
		return nil, err
	}

	now := time.Now()
	batchID := input.BatchID
	if batchID == "" {
		batchID = uuid.New().String()
	}

	var created *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRecordRepository,
	) error {
		mov, err := applyDelta(movRepo, stockRepo, applyParams{
			actorID:     input.ActorID,
			batchID:     batchID,
			variantID:   input.VariantID,
			warehouseID: input.WarehouseID,
			movType:     input.Type,
			delta:       delta,
			reason:      input.Reason,
			reference:   input.Reference,
			now:         now,
		})
		if err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveDelta valida campos y devuelve el delta firmado según el tipo.
func (uc *RegisterMovementUseCase) resolveDelta(input MovementInput) (decimal.Decimal, error) {
	if input.VariantID == "" || input.WarehouseID == "" || input.Reason == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypeENTRY:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return input.Quantity, nil
	case entity.MovementTypeEXIT:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return input.Quantity.Neg(), nil
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity.IsZero() {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return input.Quantity, nil
	}
	// TRANSFER entra por TransferUseCase, nunca por aquí
	return decimal.Zero, domain.ErrInvalidInput
}

// checkCollaborators valida que variante y bodega existan y estén operativas.
func (uc *RegisterMovementUseCase) checkCollaborators(input MovementInput) error {
	variant, err := uc.variantRepo.GetByID(input.VariantID)
	if err != nil {
		return err
	}
	if variant == nil {
		return domain.ErrNotFound
	}
	// Una variante descontinuada aún puede salir o ajustarse, pero no recibir
	if !variant.Active && input.Type == entity.MovementTypeENTRY {
		return domain.ErrConflict
	}
	warehouse, err := uc.warehouseRepo.GetByID(input.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if !warehouse.Active {
		return domain.ErrConflict
	}
	return nil
}

// applyParams parámetros de una mutación ya validada, dentro de la tx.
type applyParams struct {
	actorID          string
	batchID          string
	variantID        string
	warehouseID      string
	destWarehouseID  string
	linkedMovementID string
	movementID       string
	movType          string
	delta            decimal.Decimal
	reason           string
	reference        string
	now              time.Time
}

// applyDelta muta el stock de una clave (variante, bodega) y anota su
// movimiento, usando los repositorios de la transacción del caller. Es el
// único punto del motor que escribe StockRecord.
func applyDelta(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRecordRepository,
	p applyParams,
) (*entity.Movement, error) {
	stock, err := stockRepo.GetForUpdate(p.variantID, p.warehouseID)
	if err != nil {
		return nil, err
	}
	before := stock.Available
	after := before.Add(p.delta)
	if after.LessThan(decimal.Zero) {
		return nil, domain.ErrInsufficientStock
	}
	stock.Available = after
	stock.UpdatedAt = p.now
	if err := stockRepo.Upsert(stock); err != nil {
		return nil, err
	}

	id := p.movementID
	if id == "" {
		id = uuid.New().String()
	}
	mov := &entity.Movement{
		ID:                     id,
		BatchID:                p.batchID,
		VariantID:              p.variantID,
		WarehouseID:            p.warehouseID,
		DestinationWarehouseID: p.destWarehouseID,
		LinkedMovementID:       p.linkedMovementID,
		Type:                   p.movType,
		Quantity:               p.delta,
		StockBefore:            before,
		StockAfter:             after,
		Reason:                 p.reason,
		Reference:              p.reference,
		ActorID:                p.actorID,
		CreatedAt:              p.now,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}
