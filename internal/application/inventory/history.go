package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// HistoryUseCase consulta paginada del historial inmutable de movimientos.
type HistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo}
}

// HistoryQuery filtros del historial.
type HistoryQuery struct {
	WarehouseID string
	VariantID   string
	Type        string
	From        *time.Time
	To          *time.Time
	Page        dto.PageRequest
}

// GetHistory devuelve la página pedida más los metadatos de paginación
// (total y número de páginas al límite actual).
func (uc *HistoryUseCase) GetHistory(ctx context.Context, q HistoryQuery) (*dto.MovementHistoryResponse, error) {
	if q.Type != "" && !entity.ValidMovementType(q.Type) {
		return nil, domain.ErrInvalidInput
	}
	q.Page.DefaultPage()

	filter := repository.MovementFilter{
		WarehouseID: q.WarehouseID,
		VariantID:   q.VariantID,
		Type:        q.Type,
		From:        q.From,
		To:          q.To,
		Limit:       q.Page.Limit,
		Offset:      q.Page.Offset,
	}
	total, err := uc.movRepo.Count(filter)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.List(filter)
	if err != nil {
		return nil, err
	}

	records := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		records = append(records, dto.NewMovementResponse(m))
	}
	return &dto.MovementHistoryResponse{
		Records: records,
		Total:   total,
		Limit:   q.Page.Limit,
		Offset:  q.Page.Offset,
		Pages:   q.Page.Pages(total),
	}, nil
}

// GetByID devuelve un movimiento puntual del libro.
func (uc *HistoryUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewMovementResponse(mov)
	return &resp, nil
}
