package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/ferreteriapro/admin-api/internal/application/billing"
	"github.com/ferreteriapro/admin-api/internal/application/dto"
)

// DraftHandler maneja el borrador de factura del usuario autenticado
// (protegido). Cada usuario tiene un único borrador, identificado por el
// user_id del token.
type DraftHandler struct {
	uc *appbilling.DraftUseCase
}

// NewDraftHandler construye el handler.
func NewDraftHandler(uc *appbilling.DraftUseCase) *DraftHandler {
	return &DraftHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener el borrador actual con sus totales
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borrador [get]
func (h *DraftHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(backendCtx(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar producto al borrador
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddLineRequest  true  "Producto y cantidad"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/borrador/lineas [post]
func (h *DraftHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddProduct(backendCtx(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeQuantity godoc
// @Summary      Cambiar la cantidad de una línea del borrador
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "Índice de la línea (desde 0)"
// @Param        body   body  dto.ChangeQuantityRequest  true  "Nueva cantidad"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "Supera el stock visto al agregar"
// @Router       /api/borrador/lineas/{index} [put]
func (h *DraftHandler) ChangeQuantity(c *fiber.Ctx) error {
	index, ok := lineIndex(c)
	if !ok {
		return nil
	}
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeQuantity(backendCtx(c), GetUserID(c), index, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Quitar una línea del borrador
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Param        index  path  int  true  "Índice de la línea (desde 0)"
// @Success      200  {object}  dto.DraftResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/borrador/lineas/{index} [delete]
func (h *DraftHandler) RemoveLine(c *fiber.Ctx) error {
	index, ok := lineIndex(c)
	if !ok {
		return nil
	}
	out, err := h.uc.RemoveLine(backendCtx(c), GetUserID(c), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetCustomer godoc
// @Summary      Guardar los datos del cliente en el borrador
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Datos del cliente"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borrador/cliente [put]
func (h *DraftHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetCustomer(backendCtx(c), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetDiscount godoc
// @Summary      Fijar el descuento global del borrador
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DiscountRequest  true  "Descuento"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borrador/descuento [put]
func (h *DraftHandler) SetDiscount(c *fiber.Ctx) error {
	var in dto.DiscountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetDiscount(backendCtx(c), GetUserID(c), in.Discount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetExempt godoc
// @Summary      Activar o desactivar la exoneración de IVA
// @Tags         draft
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExemptRequest  true  "Exoneración"
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borrador/exoneracion [put]
func (h *DraftHandler) SetExempt(c *fiber.Ctx) error {
	var in dto.ExemptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetExempt(backendCtx(c), GetUserID(c), in.Exempt)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear godoc
// @Summary      Vaciar el borrador (conserva la exoneración)
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/borrador [delete]
func (h *DraftHandler) Clear(c *fiber.Ctx) error {
	out, err := h.uc.Clear(backendCtx(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Validar y emitir la factura del borrador
// @Description  Si el borrador incumple reglas responde 400 con la lista
// @Description  COMPLETA de violaciones y el borrador queda intacto.
// @Tags         draft
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  entity.Invoice
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/borrador/emitir [post]
func (h *DraftHandler) Submit(c *fiber.Ctx) error {
	invoice, violations, err := h.uc.Submit(backendCtx(c), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	if len(violations) > 0 {
		out := dto.ValidationErrorResponse{Code: "VALIDATION"}
		for _, v := range violations {
			out.Errors = append(out.Errors, dto.ViolationEntry{Field: v.Field, Message: v.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// lineIndex lee el parámetro :index (desde 0). Si es inválido escribe el 400
// y devuelve ok=false.
func lineIndex(c *fiber.Ctx) (int, bool) {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil || index < 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice de línea inválido"})
		return 0, false
	}
	return index, true
}
