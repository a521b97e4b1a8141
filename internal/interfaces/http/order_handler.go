package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/purchasing"
)

// OrderHandler maneja las peticiones HTTP para órdenes de compra (protegido).
type OrderHandler struct {
	uc *purchasing.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *purchasing.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes de compra con estado inferido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        estado     query  string  false  "pendiente|parcial|completa|cancelada"
// @Param        proveedor  query  int     false  "ID del proveedor"
// @Success      200  {object}  backend.Page[purchasing.OrderResponse]
// @Router       /api/ordenes-compra [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(backendCtx(c), queryValues(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden de compra por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  purchasing.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(backendCtx(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  purchasing.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	in, ok := bodyMap(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Create(backendCtx(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de compra
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  purchasing.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	in, ok := bodyMap(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Update(backendCtx(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar orden de compra
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la orden"
// @Success      200  {object}  purchasing.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ordenes-compra/{id}/cancelar [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Cancel(backendCtx(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
