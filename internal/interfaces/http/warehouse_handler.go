package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/repository"
)

// WarehouseHandler catálogo de bodegas (solo lectura).
type WarehouseHandler struct {
	repo repository.WarehouseRepository
}

func NewWarehouseHandler(repo repository.WarehouseRepository) *WarehouseHandler {
	return &WarehouseHandler{repo: repo}
}

// List godoc
// @Summary      Listar bodegas activas
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "por defecto 20, máx 100"
// @Param        offset  query  int  false  "por defecto 0"
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit"), Offset: c.QueryInt("offset")}
	page.DefaultPage()

	warehouses, err := h.repo.ListActive(page.Limit, page.Offset)
	if err != nil {
		return respondDomainError(c, err)
	}
	out := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, dto.NewWarehouseResponse(w))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener una bodega por ID
// @Tags         warehouses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.WarehouseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/warehouses/{id} [get]
func (h *WarehouseHandler) GetByID(c *fiber.Ctx) error {
	w, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if w == nil {
		return respondDomainError(c, domain.ErrNotFound)
	}
	return c.JSON(dto.NewWarehouseResponse(w))
}
