package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// InvoicePayloadLine línea del payload de creación de factura. Los montos
// viajan como strings con 2 decimales fijos para evitar deriva de formato
// flotante en el cable.
type InvoicePayloadLine struct {
	ProductID int64  `json:"producto"`
	Quantity  int64  `json:"cantidad"`
	UnitPrice string `json:"precio_unitario"` // "0.00"
	Subtotal  string `json:"subtotal"`        // "0.00"
}

// InvoicePayload cuerpo de POST /api/facturas/. No lleva id, número, fecha ni
// totales: el backend los calcula y numera.
type InvoicePayload struct {
	DocumentType    string               `json:"tipo_documento"` // siempre en minúsculas
	DocumentNumber  string               `json:"numero_documento"`
	CustomerName    string               `json:"nombre_cliente"`
	CustomerEmail   string               `json:"email_cliente"`
	CustomerPhone   string               `json:"telefono_cliente"`
	CustomerAddress string               `json:"direccion_cliente"`
	Discount        string               `json:"descuento_total"` // "0.00"
	VATExempt       bool                 `json:"exonerado_iva"`
	Observations    string               `json:"observaciones"`
	Lines           []InvoicePayloadLine `json:"detalles"`
}

// ListInvoices lista facturas paginadas.
func (c *Client) ListInvoices(ctx context.Context, params url.Values) (*Page[entity.Invoice], error) {
	var page Page[entity.Invoice]
	if err := c.do(ctx, http.MethodGet, "/api/facturas/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetInvoice obtiene una factura por ID.
func (c *Client) GetInvoice(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/facturas/%d/", id), nil, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetInvoiceFullData obtiene la factura con todos los datos denormalizados
// que necesita la representación en PDF.
func (c *Client) GetInvoiceFullData(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/facturas/%d/datos_completos/", id), nil, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// CreateInvoice envía el payload de factura. El backend descuenta stock,
// asigna número y calcula los totales autoritativos.
func (c *Client) CreateInvoice(ctx context.Context, payload InvoicePayload) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := c.do(ctx, http.MethodPost, "/api/facturas/", nil, payload, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// DeleteInvoice elimina (anula) una factura.
func (c *Client) DeleteInvoice(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/facturas/%d/", id), nil, nil, nil)
}
