package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// vatRate IVA 10% sobre la base imponible (subtotal - descuento).
var vatRate = decimal.New(10, -2)

// Totals totales derivados de un borrador. Nunca se almacenan: se recalculan
// en cada mutación.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxableBase decimal.Decimal `json:"base_imponible"`
	Tax         decimal.Decimal `json:"impuesto_total"`
	Total       decimal.Decimal `json:"total"`
}

// round2 redondeo a 2 decimales, mitad hacia arriba. Se aplica en cada
// multiplicación (línea por línea e impuesto), no solo al final.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ComputeTotals deriva los totales del borrador. Función pura e idempotente:
// dos llamadas con el mismo borrador producen valores idénticos bit a bit.
//
//	subtotal      = Σ round2(precio * cantidad) por línea
//	base          = subtotal - descuento   (sin clamp: un descuento mayor al
//	                subtotal produce base negativa, comportamiento heredado)
//	impuesto      = exonerado ? 0 : round2(base * 0.10)
//	total         = base + impuesto
func ComputeTotals(d *Draft) Totals {
	subtotal := decimal.Zero
	for _, l := range d.Lines {
		subtotal = subtotal.Add(round2(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))))
	}
	base := subtotal.Sub(d.Discount)
	tax := decimal.Zero
	if !d.VATExempt {
		tax = round2(base.Mul(vatRate))
	}
	return Totals{
		Subtotal:    subtotal,
		TaxableBase: base,
		Tax:         tax,
		Total:       base.Add(tax),
	}
}

// AddLine agrega un producto al carrito. Si ya existe una línea para ese
// producto, fusiona las cantidades y revalida contra el stock disponible.
//
// Errores: domain.ErrInvalidQuantity (cantidad <= 0),
// domain.ErrInsufficientStock (cantidad, o la fusionada, excede el stock),
// domain.ErrMissingPrice (producto sin precio asignado).
func (d *Draft) AddLine(p *entity.Product, quantity int64) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return domain.ErrInsufficientStock
	}
	if !p.HasPrice() {
		return domain.ErrMissingPrice
	}

	for i := range d.Lines {
		if d.Lines[i].ProductID != p.ID {
			continue
		}
		merged := d.Lines[i].Quantity + quantity
		if merged > p.Stock {
			return domain.ErrInsufficientStock
		}
		d.Lines[i].Quantity = merged
		d.Lines[i].Subtotal = round2(d.Lines[i].UnitPrice.Mul(decimal.NewFromInt(merged)))
		d.touch()
		return nil
	}

	price := *p.UnitPrice
	d.Lines = append(d.Lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		ProductCode: p.Code,
		Brand:       p.Brand,
		Category:    p.Category,
		StockAtAdd:  p.Stock,
		Quantity:    quantity,
		UnitPrice:   price,
		Subtotal:    round2(price.Mul(decimal.NewFromInt(quantity))),
	})
	d.touch()
	return nil
}

// ChangeQuantity fija la cantidad de la línea index. La cota superior es
// StockAtAdd (la foto tomada al agregar); no se consulta stock vivo.
func (d *Draft) ChangeQuantity(index int, quantity int64) error {
	if index < 0 || index >= len(d.Lines) {
		return domain.ErrLineOutOfRange
	}
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	line := &d.Lines[index]
	if quantity > line.StockAtAdd {
		return domain.ErrInsufficientStock
	}
	line.Quantity = quantity
	line.Subtotal = round2(line.UnitPrice.Mul(decimal.NewFromInt(quantity)))
	d.touch()
	return nil
}

// RemoveLine elimina la línea index del carrito.
func (d *Draft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return domain.ErrLineOutOfRange
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	d.touch()
	return nil
}

func (d *Draft) touch() {
	d.UpdatedAt = time.Now()
}
