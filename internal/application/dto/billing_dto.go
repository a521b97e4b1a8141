package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/domain/billing"
)

// AddLineRequest agrega un producto al borrador.
type AddLineRequest struct {
	ProductID int64 `json:"producto"`
	Quantity  int64 `json:"cantidad"`
}

// ChangeQuantityRequest fija la cantidad de una línea existente.
type ChangeQuantityRequest struct {
	Quantity int64 `json:"cantidad"`
}

// CustomerRequest datos del cliente en el borrador. Se guardan tal cual; la
// validación ocurre recién al enviar.
type CustomerRequest struct {
	DocumentType   string `json:"tipo_documento"` // ninguno | cedula | ruc
	DocumentNumber string `json:"numero_documento"`
	Name           string `json:"nombre_cliente"`
	Email          string `json:"email_cliente"`
	Phone          string `json:"telefono_cliente"`
	Address        string `json:"direccion_cliente"`
	Observations   string `json:"observaciones"`
}

// DiscountRequest fija el descuento global del borrador.
type DiscountRequest struct {
	Discount decimal.Decimal `json:"descuento_total"`
}

// ExemptRequest activa o desactiva la exoneración de IVA.
type ExemptRequest struct {
	Exempt bool `json:"exonerado_iva"`
}

// DraftResponse el borrador completo más sus totales derivados. Los totales
// nunca se almacenan: se recalculan en cada respuesta.
type DraftResponse struct {
	Draft  billing.Draft  `json:"borrador"`
	Totals billing.Totals `json:"totales"`
}
