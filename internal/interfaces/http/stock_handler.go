package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/pkg/validation"
)

// StockHandler expone la consulta de stock, alertas y umbrales mínimos.
type StockHandler struct {
	query  *inventory.StockQueryUseCase
	alerts *inventory.AlertsUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(query *inventory.StockQueryUseCase, alerts *inventory.AlertsUseCase) *StockHandler {
	return &StockHandler{query: query, alerts: alerts}
}

// List godoc
// @Summary      Consultar stock actual
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        sku           query  string  false  "SKU exacto"
// @Param        q             query  string  false  "Búsqueda libre (sin acentos)"
// @Param        limit         query  int     false  "por defecto 20, máx 100"
// @Param        offset        query  int     false  "por defecto 0"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	result, err := h.query.Search(c.Context(), inventory.StockQuery{
		WarehouseID: c.Query("warehouse_id"),
		SKU:         c.Query("sku"),
		Query:       c.Query("q"),
		Page: dto.PageRequest{
			Limit:  c.QueryInt("limit"),
			Offset: c.QueryInt("offset"),
		},
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}

// Alerts godoc
// @Summary      Variantes en o por debajo del mínimo
// @Description  Ordenadas por déficit descendente; las críticas primero en caso
//
//	de empate.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {array}  dto.AlertResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.ListBelowMinimum(c.Context(), c.Query("warehouse_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(alerts)
}

// SetThreshold godoc
// @Summary      Configurar umbral mínimo por variante o producto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ThresholdRequest  true  "variant_id o product_id, unit, minimum, critical"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/thresholds [post]
func (h *StockHandler) SetThreshold(c *fiber.Ctx) error {
	var in dto.ThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	if err := h.alerts.SetThreshold(c.Context(), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
