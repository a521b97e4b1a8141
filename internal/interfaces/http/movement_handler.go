package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferreteriapro/admin-api/internal/application/usecase"
)

// MovementHandler historial de movimientos de inventario (protegido).
type MovementHandler struct {
	uc *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos de inventario
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        producto  query  int     false  "ID del producto"
// @Param        tipo      query  string  false  "entrada|salida|ajuste"
// @Success      200  {object}  backend.Page[entity.Movement]
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(backendCtx(c), queryValues(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
