package entity

import "github.com/shopspring/decimal"

// Tipos de documento de identidad aceptados por facturación.
// Los valores viajan SIEMPRE en minúsculas hacia el backend.
const (
	DocumentNone   = "ninguno"
	DocumentCedula = "cedula"
	DocumentRUC    = "ruc"
)

// Client espeja el recurso /api/clientes/ del backend remoto.
type Client struct {
	ID             int64            `json:"id"`
	DocumentType   string           `json:"tipo_documento"` // ninguno | cedula | ruc
	DocumentNumber string           `json:"numero_documento"`
	Name           string           `json:"nombre"`
	Email          string           `json:"email"`
	Phone          string           `json:"telefono"`
	Address        string           `json:"direccion"`
	Active         bool             `json:"activo"`
	RegisteredAt   string           `json:"fecha_registro"`
	UpdatedAt      string           `json:"fecha_actualizacion"`
	PurchaseCount  int64            `json:"total_compras"`
	PurchaseAmount *decimal.Decimal `json:"monto_total_compras"`
}

// ClientSearch respuesta de /api/clientes/buscar_por_documento/.
type ClientSearch struct {
	Found   bool    `json:"encontrado"`
	Client  *Client `json:"cliente"`
	Message string  `json:"mensaje"`
}
