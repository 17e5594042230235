package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/movement"
	"github.com/tu-usuario/almacen-pro/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP de traslados y lotes de
// movimientos.
type InventoryHandler struct {
	engine *movement.BatchEngine
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *movement.BatchEngine) *InventoryHandler {
	return &InventoryHandler{engine: engine}
}

// CreateTransfer godoc
// @Summary      Crear un traslado entre ubicaciones
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "product_id, quantity, from_location, to_location, status (draft|completed)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	record, err := h.engine.CreateTransfer(c.Context(), movement.TransferInput{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		Status:       in.Status,
		BatchNumber:  in.BatchNumber,
		UserID:       GetUserID(c),
		Notes:        in.Notes,
	})
	if err != nil {
		return mapMovementError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(record))
}

// ListGrouped godoc
// @Summary      Listar movimientos agrupados por lote
// @Tags         inventory
// @Produce      json
// @Param        status     query  []string  false  "draft, pending, completed"
// @Param        date_from  query  string    false  "dd.mm.yyyy"
// @Param        date_to    query  string    false  "dd.mm.yyyy"
// @Success      200  {array}  dto.MovementGroupResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListGrouped(c *fiber.Ctx) error {
	var filterReq dto.MovementFilterRequest
	if err := c.QueryParser(&filterReq); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	groups, err := h.engine.ListGrouped(filterReq.ToFilter())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.MovementGroupResponse{
			Representative: dto.ToMovementResponse(g.Representative),
			GroupedCount:   g.GroupedCount,
			IsGrouped:      g.IsGrouped,
			Status:         g.Status,
		})
	}
	return c.JSON(out)
}

// EditBatch godoc
// @Summary      Vista editable de un lote en borrador
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "clave del lote (batch_number o ID del movimiento)"
// @Success      200  {array}  dto.BatchItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/batches/{id} [get]
func (h *InventoryHandler) EditBatch(c *fiber.Ctx) error {
	items, err := h.engine.EditBatch(c.Params("id"))
	if err != nil {
		return mapMovementError(c, err)
	}
	out := make([]dto.BatchItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.BatchItemResponse{
			ProductID:    it.ProductID,
			FromLocation: it.FromLocation,
			ToLocation:   it.ToLocation,
			Quantity:     it.Quantity,
			Notes:        it.Notes,
		})
	}
	return c.JSON(out)
}

// CompleteBatch godoc
// @Summary      Completar un lote (aplica los deltas al ledger, todo-o-nada)
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "clave del lote"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/batches/{id}/complete [post]
func (h *InventoryHandler) CompleteBatch(c *fiber.Ctx) error {
	if err := h.engine.CompleteBatch(c.Context(), c.Params("id")); err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(fiber.Map{"message": "lote completado"})
}

// DeleteMovement godoc
// @Summary      Eliminar un registro de movimiento
// @Tags         inventory
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements/{id} [delete]
func (h *InventoryHandler) DeleteMovement(c *fiber.Ctx) error {
	if err := h.engine.DeleteRecord(c.Params("id")); err != nil {
		return mapMovementError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// mapMovementError traduce errores de dominio a códigos HTTP; lo no
// reconocido se reporta tal cual (los fallos de transporte nunca se
// silencian).
func mapMovementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrSameLocation),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownLocation), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrBatchCompleted), errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
