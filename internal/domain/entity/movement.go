package entity

// Tipos de movimiento de inventario del backend remoto.
const (
	MovementEntry  = "entrada"
	MovementExit   = "salida"
	MovementAdjust = "ajuste"
)

// Movement espeja el recurso /api/movimientos/ del backend remoto (historial
// de entradas/salidas de stock, solo lectura desde esta aplicación).
type Movement struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"producto"`
	ProductName string `json:"producto_nombre"`
	Type        string `json:"tipo"` // entrada | salida | ajuste
	Quantity    int64  `json:"cantidad"`
	Reason      string `json:"motivo"`
	UserID      int64  `json:"usuario"`
	Username    string `json:"usuario_nombre"`
	Date        string `json:"fecha"`
}
