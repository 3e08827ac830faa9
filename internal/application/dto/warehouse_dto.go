package dto

import "github.com/tu-usuario/stock-engine/internal/domain/entity"

// WarehouseResponse vista de solo lectura de una bodega del registro.
type WarehouseResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	IsPointOfSale bool   `json:"is_point_of_sale"`
	Active        bool   `json:"active"`
}

// NewWarehouseResponse mapea la entidad al DTO.
func NewWarehouseResponse(w *entity.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:            w.ID,
		Code:          w.Code,
		Name:          w.Name,
		IsPointOfSale: w.IsPointOfSale,
		Active:        w.Active,
	}
}
