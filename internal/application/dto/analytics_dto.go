package dto

import "github.com/shopspring/decimal"

// DashboardStats resumen del tablero principal.
type DashboardStats struct {
	SalesToday      decimal.Decimal  `json:"ventas_hoy"`
	SalesMonth      decimal.Decimal  `json:"ventas_mes"`
	InvoicesToday   int              `json:"facturas_hoy"`
	InvoicesMonth   int              `json:"facturas_mes"`
	UniqueClients   int              `json:"clientes_unicos"`
	LowStockCount   int              `json:"productos_stock_bajo"`
	MonthLabel      string           `json:"mes"`
	SalesByDay      []SalesByDay     `json:"ventas_por_dia"`
	FrequentClients []FrequentClient `json:"clientes_frecuentes"`
	PopularBrands   []PopularBrand   `json:"marcas_populares"`
	TopProducts     []TopProduct     `json:"productos_top"`
}

// SalesByDay ventas agregadas de un día.
type SalesByDay struct {
	Date     string          `json:"fecha"` // YYYY-MM-DD
	Total    decimal.Decimal `json:"total"`
	Invoices int             `json:"facturas"`
}

// FrequentClient cliente ordenado por cantidad de compras del período.
type FrequentClient struct {
	Name     string          `json:"nombre"`
	Document string          `json:"numero_documento"`
	Count    int             `json:"compras"`
	Amount   decimal.Decimal `json:"monto"`
}

// PopularBrand marca ordenada por unidades vendidas del período.
type PopularBrand struct {
	Brand string `json:"marca"`
	Units int64  `json:"unidades"`
}

// TopProduct producto ordenado por unidades vendidas del período.
type TopProduct struct {
	ProductID int64           `json:"producto"`
	Name      string          `json:"nombre"`
	Units     int64           `json:"unidades"`
	Amount    decimal.Decimal `json:"monto"`
}
