package entity

import "github.com/shopspring/decimal"

// Estados de una orden de compra según el backend remoto.
const (
	OrderPending   = "pendiente"
	OrderPartial   = "parcial"
	OrderComplete  = "completa"
	OrderCancelled = "cancelada"
)

// PurchaseOrderLine línea de una orden de compra.
// El backend serializa los montos como strings decimales.
type PurchaseOrderLine struct {
	ID               int64           `json:"id"`
	ProductID        int64           `json:"producto"`
	ProductName      string          `json:"producto_nombre"`
	QuantityOrdered  int64           `json:"cantidad_solicitada"`
	QuantityReceived int64           `json:"cantidad_recibida"`
	UnitPrice        decimal.Decimal `json:"precio_unitario"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	QuantityPending  int64           `json:"cantidad_pendiente"`
	Complete         bool            `json:"esta_completo"`
}

// PurchaseOrder espeja el recurso /api/ordenes-compra/ del backend remoto.
type PurchaseOrder struct {
	ID           int64               `json:"id"`
	Number       string              `json:"numero_orden"`
	SupplierID   int64               `json:"proveedor"`
	SupplierName string              `json:"proveedor_nombre"`
	OrderDate    string              `json:"fecha_orden"`
	ExpectedDate string              `json:"fecha_esperada"`
	Status       string              `json:"estado"` // pendiente | parcial | completa | cancelada
	Estimated    *decimal.Decimal    `json:"total_estimado"`
	Observations string              `json:"observaciones"`
	UserID       int64               `json:"usuario"`
	Lines        []PurchaseOrderLine `json:"detalles"`
}
