package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// producto construye un producto de catálogo con precio y stock dados.
func producto(id int64, precio string, stock int64) *entity.Product {
	p := decimal.RequireFromString(precio)
	return &entity.Product{
		ID:        id,
		Code:      "FER-001",
		Name:      "Martillo Stanley",
		Brand:     "Stanley",
		UnitPrice: &p,
		Stock:     stock,
	}
}

// ── ComputeTotals ─────────────────────────────────────────────────────────────

// Escenario de referencia: precio 12500 x 3 = 37500; descuento 5000 deja base
// 32500; IVA 10% = 3250.00; total 35750.00.
func TestComputeTotals_EscenarioReferencia(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "12500", 10), 3))
	d.Discount = decimal.NewFromInt(5000)

	tot := billing.ComputeTotals(d)

	assert.True(t, tot.Subtotal.Equal(decimal.NewFromInt(37500)), "subtotal = %s", tot.Subtotal)
	assert.True(t, tot.TaxableBase.Equal(decimal.NewFromInt(32500)), "base = %s", tot.TaxableBase)
	assert.True(t, tot.Tax.Equal(decimal.RequireFromString("3250.00")), "impuesto = %s", tot.Tax)
	assert.True(t, tot.Total.Equal(decimal.RequireFromString("35750.00")), "total = %s", tot.Total)
}

// ComputeTotals es pura: dos llamadas con el mismo borrador devuelven
// exactamente lo mismo y no mutan el borrador.
func TestComputeTotals_EsPuraEIdempotente(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "199.99", 50), 7))
	require.NoError(t, d.AddLine(producto(2, "0.35", 1000), 13))
	d.Discount = decimal.RequireFromString("12.50")

	a := billing.ComputeTotals(d)
	b := billing.ComputeTotals(d)

	assert.Equal(t, a.Subtotal.String(), b.Subtotal.String())
	assert.Equal(t, a.TaxableBase.String(), b.TaxableBase.String())
	assert.Equal(t, a.Tax.String(), b.Tax.String())
	assert.Equal(t, a.Total.String(), b.Total.String())
}

// Para borradores no exonerados: impuesto == round2((subtotal - descuento) * 0.10).
func TestComputeTotals_ImpuestoSobreBaseImponible(t *testing.T) {
	cases := []struct {
		nombre    string
		precio    string
		cantidad  int64
		descuento string
		impuesto  string
	}{
		{"sin descuento", "100", 1, "0", "10.00"},
		{"con descuento", "100", 3, "50", "25.00"},
		{"centavos con redondeo", "33.33", 1, "0", "3.33"},   // 3.333 -> 3.33
		{"redondeo mitad arriba", "10.25", 1, "0", "1.03"},   // 1.025 -> 1.03
		{"descuento mayor al subtotal", "100", 1, "150", "-5.00"}, // base negativa, sin clamp
	}
	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			d := billing.NewDraft()
			require.NoError(t, d.AddLine(producto(1, c.precio, 10000), c.cantidad))
			d.Discount = decimal.RequireFromString(c.descuento)

			tot := billing.ComputeTotals(d)
			assert.True(t, tot.Tax.Equal(decimal.RequireFromString(c.impuesto)),
				"impuesto esperado %s, obtenido %s", c.impuesto, tot.Tax)
		})
	}
}

// Exonerado: impuesto 0 sin importar subtotal ni descuento, total == base.
func TestComputeTotals_Exonerado(t *testing.T) {
	d := billing.NewDraft()
	d.VATExempt = true
	require.NoError(t, d.AddLine(producto(1, "12500", 10), 3))
	d.Discount = decimal.NewFromInt(5000)

	tot := billing.ComputeTotals(d)
	assert.True(t, tot.Tax.IsZero(), "exonerado debe tener impuesto 0")
	assert.True(t, tot.Total.Equal(tot.TaxableBase))
}

// El redondeo es por línea antes de sumar, no solo al final.
func TestComputeTotals_RedondeaPorLinea(t *testing.T) {
	d := billing.NewDraft()
	// 3 x 0.335 = 1.005 -> round2 por línea = 1.01 (dos líneas = 2.02).
	// Redondeando solo al final sería 2.01.
	require.NoError(t, d.AddLine(producto(1, "0.335", 100), 3))
	require.NoError(t, d.AddLine(producto(2, "0.335", 100), 3))

	tot := billing.ComputeTotals(d)
	assert.True(t, tot.Subtotal.Equal(decimal.RequireFromString("2.02")),
		"subtotal por línea redondeada = %s", tot.Subtotal)
}

func TestComputeTotals_BorradorVacio(t *testing.T) {
	tot := billing.ComputeTotals(billing.NewDraft())
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Total.IsZero())
}

// ── AddLine ───────────────────────────────────────────────────────────────────

func TestAddLine_FusionaCantidadesDelMismoProducto(t *testing.T) {
	d := billing.NewDraft()
	p := producto(7, "1000", 10)

	require.NoError(t, d.AddLine(p, 4))
	require.NoError(t, d.AddLine(p, 3))

	require.Len(t, d.Lines, 1, "mismo producto dos veces = una sola línea")
	assert.Equal(t, int64(7), d.Lines[0].Quantity)
	assert.True(t, d.Lines[0].Subtotal.Equal(decimal.NewFromInt(7000)),
		"subtotal de línea = round2(precio * (q1+q2))")
}

func TestAddLine_FusionExcedeStock(t *testing.T) {
	d := billing.NewDraft()
	p := producto(7, "1000", 10)

	require.NoError(t, d.AddLine(p, 6))
	err := d.AddLine(p, 5) // 6+5 > 10
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(6), d.Lines[0].Quantity, "la línea no debe mutar al fallar")
}

// Frontera de stock: cantidad == stock pasa; stock+1 falla.
func TestAddLine_FronteraDeStock(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "500", 8), 8))

	d2 := billing.NewDraft()
	err := d2.AddLine(producto(1, "500", 8), 9)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, d2.Lines)
}

func TestAddLine_CantidadInvalida(t *testing.T) {
	d := billing.NewDraft()
	assert.ErrorIs(t, d.AddLine(producto(1, "500", 8), 0), domain.ErrInvalidQuantity)
	assert.ErrorIs(t, d.AddLine(producto(1, "500", 8), -3), domain.ErrInvalidQuantity)
}

func TestAddLine_ProductoSinPrecio(t *testing.T) {
	d := billing.NewDraft()
	p := &entity.Product{ID: 1, Name: "Sin precio", Stock: 10}
	assert.ErrorIs(t, d.AddLine(p, 1), domain.ErrMissingPrice)
}

// La línea captura el stock al momento de agregar.
func TestAddLine_CapturaStockAlAgregar(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "500", 8), 2))
	assert.Equal(t, int64(8), d.Lines[0].StockAtAdd)
}

// ── ChangeQuantity / RemoveLine ───────────────────────────────────────────────

func TestChangeQuantity_RecalculaSubtotal(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "12500", 10), 1))

	require.NoError(t, d.ChangeQuantity(0, 3))
	assert.Equal(t, int64(3), d.Lines[0].Quantity)
	assert.True(t, d.Lines[0].Subtotal.Equal(decimal.NewFromInt(37500)))
}

// La cota superior de ChangeQuantity es la foto de stock, no el stock vivo.
func TestChangeQuantity_ValidaContraFotoDeStock(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "500", 5), 2))

	assert.NoError(t, d.ChangeQuantity(0, 5))
	assert.ErrorIs(t, d.ChangeQuantity(0, 6), domain.ErrInsufficientStock)
	assert.ErrorIs(t, d.ChangeQuantity(0, 0), domain.ErrInvalidQuantity)
}

func TestChangeQuantity_IndiceFueraDeRango(t *testing.T) {
	d := billing.NewDraft()
	assert.ErrorIs(t, d.ChangeQuantity(0, 1), domain.ErrLineOutOfRange)
	assert.ErrorIs(t, d.ChangeQuantity(-1, 1), domain.ErrLineOutOfRange)
}

func TestRemoveLine(t *testing.T) {
	d := billing.NewDraft()
	require.NoError(t, d.AddLine(producto(1, "100", 10), 1))
	require.NoError(t, d.AddLine(producto(2, "200", 10), 1))

	require.NoError(t, d.RemoveLine(0))
	require.Len(t, d.Lines, 1)
	assert.Equal(t, int64(2), d.Lines[0].ProductID)

	assert.ErrorIs(t, d.RemoveLine(5), domain.ErrLineOutOfRange)
}

func TestClear_ConservaExoneracion(t *testing.T) {
	d := billing.NewDraft()
	d.VATExempt = true
	d.CustomerName = "Ferretería El Tornillo"
	require.NoError(t, d.AddLine(producto(1, "100", 10), 1))

	d.Clear()
	assert.Empty(t, d.Lines)
	assert.Empty(t, d.CustomerName)
	assert.True(t, d.VATExempt, "la exoneración es preferencia del puesto y se conserva")
}
