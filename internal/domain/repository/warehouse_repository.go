package repository

import "github.com/tu-usuario/stock-engine/internal/domain/entity"

// WarehouseRepository define el puerto de lectura del registro de bodegas (DIP).
// El registro es propiedad de otro sistema; el motor valida existencia y estado.
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	ListActive(limit, offset int) ([]*entity.Warehouse, error)
}
