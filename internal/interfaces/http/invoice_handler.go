package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appbilling "github.com/ferreteriapro/admin-api/internal/application/billing"
	"github.com/ferreteriapro/admin-api/internal/application/usecase"
)

// InvoiceHandler consulta de facturas emitidas y descarga de PDF (protegido).
type InvoiceHandler struct {
	uc  *usecase.InvoiceUseCase
	pdf *appbilling.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, pdf *appbilling.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar facturas emitidas
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  backend.Page[entity.Invoice]
// @Router       /api/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(backendCtx(c), queryValues(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener factura por ID
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
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

// FullData godoc
// @Summary      Obtener factura con datos completos del detalle
// @Tags         invoices
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/datos-completos [get]
func (h *InvoiceHandler) FullData(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.FullData(backendCtx(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar la factura en PDF
// @Tags         invoices
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la factura"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	pdfBytes, filename, err := h.pdf.DownloadInvoicePDF(backendCtx(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Anular factura
// @Tags         invoices
// @Security     Bearer
// @Param        id  path  int  true  "ID de la factura"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/facturas/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(backendCtx(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
