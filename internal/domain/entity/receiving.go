package entity

// ReceivingLine línea recibida de una recepción de mercadería.
type ReceivingLine struct {
	ID               int64  `json:"id"`
	OrderLineID      int64  `json:"detalle_orden"`
	ProductID        int64  `json:"producto"`
	ProductName      string `json:"producto_nombre"`
	QuantityReceived int64  `json:"cantidad_recibida"`
	Batch            string `json:"lote"`
	BatchExpiry      string `json:"fecha_vencimiento_lote"`
}

// Receiving espeja el recurso /api/recepciones/ del backend remoto.
// Al crearse, el backend incrementa el stock de los productos recibidos;
// el estado de la orden asociada se reinfiere del lado del cliente (ver
// purchasing.InferStatus).
type Receiving struct {
	ID           int64           `json:"id"`
	OrderID      int64           `json:"orden_compra"`
	OrderNumber  string          `json:"orden_compra_numero"`
	Date         string          `json:"fecha_recepcion"`
	Observations string          `json:"observaciones"`
	UserID       int64           `json:"usuario"`
	Lines        []ReceivingLine `json:"detalles"`
}
