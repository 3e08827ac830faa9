package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/stock-engine/internal/application/dto"
	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/pkg/validation"
)

// MovementHandler maneja las peticiones HTTP del motor de movimientos
// (protegido): entradas/salidas, traslados, lotes, importación e historial.
type MovementHandler struct {
	recorder *inventory.RegisterMovementUseCase
	transfer *inventory.TransferUseCase
	batch    *inventory.BatchIntakeUseCase
	imports  *inventory.BulkImportUseCase
	history  *inventory.HistoryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	recorder *inventory.RegisterMovementUseCase,
	transfer *inventory.TransferUseCase,
	batch *inventory.BatchIntakeUseCase,
	imports *inventory.BulkImportUseCase,
	history *inventory.HistoryUseCase,
) *MovementHandler {
	return &MovementHandler{
		recorder: recorder,
		transfer: transfer,
		batch:    batch,
		imports:  imports,
		history:  history,
	}
}

// respondDomainError mapea errores centinela del dominio a HTTP.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "variante o bodega no encontrada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "operación en conflicto con el estado actual"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// Register godoc
// @Summary      Registrar entrada, salida o ajuste de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "variant_id, warehouse_id, type (ENTRY|EXIT|ADJUSTMENT), quantity, reason"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	mov, err := h.recorder.RegisterMovementFromRequest(c.Context(), actorID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewMovementResponse(mov))
}

// Transfer godoc
// @Summary      Trasladar stock entre bodegas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "variant_id, source_warehouse_id, destination_warehouse_id, quantity"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *MovementHandler) Transfer(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.transfer.TransferFromRequest(c.Context(), actorID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Exit:  dto.NewMovementResponse(result.Exit),
		Entry: dto.NewMovementResponse(result.Entry),
	})
}

// Batch godoc
// @Summary      Ingreso masivo de stock (lote)
// @Description  Procesa las líneas en orden con semántica continúa-ante-error:
//
//	la respuesta es 200 aunque haya líneas fallidas; revisar errors[].
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchIntakeRequest  true  "warehouse_id, reason, lines[]"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/batch [post]
func (h *MovementHandler) Batch(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BatchIntakeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.batch.ProcessFromRequest(c.Context(), actorID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}

// Import godoc
// @Summary      Importar stock desde filas parseadas de archivo
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "warehouse_id, reason, rows[] (code_or_sku, quantity)"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/import [post]
func (h *MovementHandler) Import(c *fiber.Ctx) error {
	actorID := GetActorID(c)
	if actorID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validation.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	result, err := h.imports.ImportFromRequest(c.Context(), actorID, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(result)
}

// History godoc
// @Summary      Historial paginado de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        variant_id    query  string  false  "Filtrar por variante"
// @Param        type          query  string  false  "ENTRY|EXIT|TRANSFER|ADJUSTMENT"
// @Param        date_from     query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        date_to       query  string  false  "RFC3339 o YYYY-MM-DD"
// @Param        limit         query  int     false  "por defecto 20, máx 100"
// @Param        offset        query  int     false  "por defecto 0"
// @Success      200  {object}  dto.MovementHistoryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *MovementHandler) History(c *fiber.Ctx) error {
	from, err := parseDateQuery(c.Query("date_from"), false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_from inválido"})
	}
	to, err := parseDateQuery(c.Query("date_to"), true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date_to inválido"})
	}

	result, err := h.history.GetHistory(c.Context(), inventory.HistoryQuery{
		WarehouseID: c.Query("warehouse_id"),
		VariantID:   c.Query("variant_id"),
		Type:        c.Query("type"),
		From:        from,
		To:          to,
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

// GetByID godoc
// @Summary      Obtener un movimiento por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	mov, err := h.history.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(mov)
}

// parseDateQuery acepta RFC3339 o fecha sola; endOfDay extiende YYYY-MM-DD al
// final del día para que date_to sea inclusivo.
func parseDateQuery(s string, endOfDay bool) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
