package entity

import "github.com/shopspring/decimal"

// InvoiceLine línea de detalle de una factura de venta emitida.
type InvoiceLine struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"producto"`
	ProductName string          `json:"producto_nombre"`
	ProductCode string          `json:"codigo_producto"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Invoice espeja el recurso /api/facturas/ del backend remoto.
// Los totales los calcula y numera el backend; aquí solo se leen.
type Invoice struct {
	ID             int64           `json:"id"`
	Number         string          `json:"numero_factura"`
	Date           string          `json:"fecha"`
	DocumentType   string          `json:"tipo_documento"`
	DocumentNumber string          `json:"numero_documento"`
	CustomerName   string          `json:"nombre_cliente"`
	CustomerEmail  string          `json:"email_cliente"`
	CustomerPhone  string          `json:"telefono_cliente"`
	CustomerAddr   string          `json:"direccion_cliente"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"descuento_total"`
	Tax            decimal.Decimal `json:"impuesto_total"`
	Total          decimal.Decimal `json:"total"`
	VATExempt      bool            `json:"exonerado_iva"`
	Observations   string          `json:"observaciones"`
	UserID         int64           `json:"usuario"`
	Lines          []InvoiceLine   `json:"detalles"`
}
