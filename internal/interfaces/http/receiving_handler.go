package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/purchasing"
)

// ReceivingHandler maneja las peticiones HTTP para recepciones (protegido).
type ReceivingHandler struct {
	uc *purchasing.ReceivingUseCase
}

// NewReceivingHandler construye el handler.
func NewReceivingHandler(uc *purchasing.ReceivingUseCase) *ReceivingHandler {
	return &ReceivingHandler{uc: uc}
}

// List godoc
// @Summary      Listar recepciones de mercadería
// @Tags         receivings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  backend.Page[entity.Receiving]
// @Router       /api/recepciones [get]
func (h *ReceivingHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(backendCtx(c), queryValues(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recepción por ID
// @Tags         receivings
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la recepción"
// @Success      200  {object}  entity.Receiving
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recepciones/{id} [get]
func (h *ReceivingHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Registrar recepción y sincronizar el estado de la orden
// @Tags         receivings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Receiving
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/recepciones [post]
func (h *ReceivingHandler) Create(c *fiber.Ctx) error {
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
