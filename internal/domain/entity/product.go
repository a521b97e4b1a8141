package entity

import "github.com/shopspring/decimal"

// Product espeja el recurso /api/productos/ del backend remoto.
// Los tags JSON usan los nombres de campo del backend (es la fuente de verdad).
// UnitPrice es puntero: el backend permite productos sin precio asignado y el
// carrito debe rechazarlos explícitamente, no tratarlos como precio 0.
type Product struct {
	ID          int64            `json:"id"`
	Code        string           `json:"codigo"`
	Name        string           `json:"nombre"`
	Brand       string           `json:"marca"`
	Category    string           `json:"categoria"`
	Subcategory string           `json:"subcategoria"`
	Description string           `json:"descripcion"`
	UnitPrice   *decimal.Decimal `json:"precio_unitario"`
	Stock       int64            `json:"stock_disponible"`
	MinStock    int64            `json:"stock_minimo"`
	Location    string           `json:"ubicacion"`
	Active      bool             `json:"activo"`
	CreatedAt   string           `json:"fecha_creacion"`
	UpdatedAt   string           `json:"fecha_actualizacion"`
}

// HasPrice indica si el producto tiene precio unitario asignado.
func (p *Product) HasPrice() bool {
	return p.UnitPrice != nil
}

// LowStock indica si el stock disponible está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
