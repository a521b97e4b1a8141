// Package billing contiene el núcleo de facturación: el borrador de factura
// (carrito), el cálculo de totales con IVA 10% y la validación previa al
// envío. Todo es puro y síncrono; la E/S vive en las capas de aplicación e
// infraestructura.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// Line línea del borrador de factura. StockAtAdd es una foto del stock
// disponible al momento de agregar la línea; los cambios de cantidad
// posteriores se validan contra esa foto, no contra el stock vivo.
type Line struct {
	ProductID   int64           `json:"producto"`
	ProductName string          `json:"producto_nombre"`
	ProductCode string          `json:"codigo_producto"`
	Brand       string          `json:"marca_producto"`
	Category    string          `json:"categoria_producto"`
	StockAtAdd  int64           `json:"stock_disponible"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"` // siempre round2(UnitPrice * Quantity)
}

// Draft borrador de factura en edición. Lo edita una sola sesión de usuario;
// no requiere sincronización. Se persiste vía repository.DraftRepository y se
// descarta tras el envío exitoso o por expiración.
type Draft struct {
	ID              string          `json:"id"`             // identificador local, no viaja al backend
	DocumentType    string          `json:"tipo_documento"` // ninguno | cedula | ruc
	DocumentNumber  string          `json:"numero_documento"`
	CustomerName    string          `json:"nombre_cliente"`
	CustomerEmail   string          `json:"email_cliente"`
	CustomerPhone   string          `json:"telefono_cliente"`
	CustomerAddress string          `json:"direccion_cliente"`
	Observations    string          `json:"observaciones"`
	Discount        decimal.Decimal `json:"descuento_total"`
	VATExempt       bool            `json:"exonerado_iva"`
	Lines           []Line          `json:"detalles"`
	UpdatedAt       time.Time       `json:"actualizado_en"`
}

// NewDraft crea un borrador vacío. Tipo de documento "cedula" por defecto,
// igual que el formulario original.
func NewDraft() *Draft {
	return &Draft{
		ID:           uuid.New().String(),
		DocumentType: entity.DocumentCedula,
		Discount:     decimal.Zero,
		UpdatedAt:    time.Now(),
	}
}

// Empty indica si el borrador no tiene líneas.
func (d *Draft) Empty() bool {
	return len(d.Lines) == 0
}

// TotalQuantity suma las cantidades de todas las líneas.
func (d *Draft) TotalQuantity() int64 {
	var total int64
	for _, l := range d.Lines {
		total += l.Quantity
	}
	return total
}

// Clear vacía el carrito y los datos del cliente, conservando el flag de
// exoneración (preferencia del puesto de venta, no de la factura).
func (d *Draft) Clear() {
	exempt := d.VATExempt
	*d = *NewDraft()
	d.VATExempt = exempt
}
