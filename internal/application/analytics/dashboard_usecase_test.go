package analytics_test

import (
	"context"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteriapro/admin-api/internal/application/analytics"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de gateway
// ──────────────────────────────────────────────────────────────────────────────

// fakeGateway sirve las facturas en páginas de tamaño fijo para ejercitar el
// seguimiento de la paginación del backend.
type fakeGateway struct {
	invoices  []entity.Invoice
	pageSize  int
	products  []entity.Product
	lowStock  []entity.Product
	pagesSeen []string
}

func (f *fakeGateway) ListInvoices(_ context.Context, params url.Values) (*backend.Page[entity.Invoice], error) {
	page, _ := strconv.Atoi(params.Get("page"))
	if page < 1 {
		page = 1
	}
	f.pagesSeen = append(f.pagesSeen, params.Get("page"))

	size := f.pageSize
	if size <= 0 {
		size = len(f.invoices)
		if size == 0 {
			size = 1
		}
	}
	from := (page - 1) * size
	to := from + size
	if from > len(f.invoices) {
		from = len(f.invoices)
	}
	if to > len(f.invoices) {
		to = len(f.invoices)
	}

	out := &backend.Page[entity.Invoice]{
		Count:   len(f.invoices),
		Results: f.invoices[from:to],
	}
	if to < len(f.invoices) {
		next := "http://backend/api/facturas/?page=" + strconv.Itoa(page+1)
		out.Next = &next
	}
	return out, nil
}

func (f *fakeGateway) ProductsDropdown(_ context.Context) ([]entity.Product, error) {
	return f.products, nil
}

func (f *fakeGateway) LowStockProducts(_ context.Context) ([]entity.Product, error) {
	return f.lowStock, nil
}

func monto(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// facturaDe arma una factura mínima para el agregado.
func facturaDe(date, doc, name, total string, lines ...entity.InvoiceLine) entity.Invoice {
	return entity.Invoice{
		Date:           date,
		DocumentNumber: doc,
		CustomerName:   name,
		Total:          monto(total),
		Lines:          lines,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregado del tablero
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_VentasDelDiaYDelMes(t *testing.T) {
	hoy := time.Now().Format("2006-01-02")
	ayer := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	gw := &fakeGateway{invoices: []entity.Invoice{
		// La fecha puede venir con hora; se recorta a YYYY-MM-DD
		facturaDe(hoy+"T09:30:00", "1234567-8", "Constructora El Progreso", "15000.00"),
		facturaDe(hoy, "", "María López", "5000.00"),
		facturaDe(ayer, "1234567-8", "Constructora El Progreso", "8000.00"),
	}}
	uc := analytics.NewDashboardUseCase(gw)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "20000", stats.SalesToday.String())
	assert.Equal(t, "28000", stats.SalesMonth.String())
	assert.Equal(t, 2, stats.InvoicesToday)
	assert.Equal(t, 3, stats.InvoicesMonth)
	assert.Equal(t, 2, stats.UniqueClients, "documento y nombre identifican al cliente")
}

func TestDashboard_SigueTodasLasPaginas(t *testing.T) {
	hoy := time.Now().Format("2006-01-02")
	invoices := make([]entity.Invoice, 5)
	for i := range invoices {
		invoices[i] = facturaDe(hoy, "", "Cliente", "100")
	}
	gw := &fakeGateway{invoices: invoices, pageSize: 2}
	uc := analytics.NewDashboardUseCase(gw)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.InvoicesMonth)
	assert.Equal(t, []string{"1", "2", "3"}, gw.pagesSeen)
	assert.Equal(t, "500", stats.SalesMonth.String())
}

func TestDashboard_SieteDiasSiemprePresentes(t *testing.T) {
	hoy := time.Now().Format("2006-01-02")
	gw := &fakeGateway{invoices: []entity.Invoice{
		facturaDe(hoy, "", "Cliente", "1000"),
	}}
	uc := analytics.NewDashboardUseCase(gw)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.SalesByDay, 7)
	ultimo := stats.SalesByDay[6]
	assert.Equal(t, hoy, ultimo.Date, "el último día de la serie es hoy")
	assert.Equal(t, "1000", ultimo.Total.String())
	for _, d := range stats.SalesByDay[:6] {
		assert.True(t, d.Total.IsZero(), "día sin ventas va en cero, no se omite: %s", d.Date)
	}
}

func TestDashboard_MarcasYProductosTop(t *testing.T) {
	hoy := time.Now().Format("2006-01-02")
	gw := &fakeGateway{
		products: []entity.Product{
			{ID: 1, Name: "Martillo", Brand: "Truper"},
			{ID: 2, Name: "Taladro", Brand: "DeWalt"},
		},
		lowStock: []entity.Product{{ID: 9}},
		invoices: []entity.Invoice{
			facturaDe(hoy, "", "Cliente", "50000",
				entity.InvoiceLine{ProductID: 1, ProductName: "Martillo", Quantity: 4, Subtotal: monto("20000")},
				entity.InvoiceLine{ProductID: 2, ProductName: "Taladro", Quantity: 1, Subtotal: monto("30000")},
			),
			facturaDe(hoy, "", "Otro", "5000",
				entity.InvoiceLine{ProductID: 1, ProductName: "Martillo", Quantity: 1, Subtotal: monto("5000")},
			),
		},
	}
	uc := analytics.NewDashboardUseCase(gw)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.LowStockCount)

	require.NotEmpty(t, stats.PopularBrands)
	assert.Equal(t, "Truper", stats.PopularBrands[0].Brand)
	assert.Equal(t, int64(5), stats.PopularBrands[0].Units)

	require.Len(t, stats.TopProducts, 2)
	assert.Equal(t, "Martillo", stats.TopProducts[0].Name, "se ordena por unidades vendidas")
	assert.Equal(t, int64(5), stats.TopProducts[0].Units)
	assert.Equal(t, "25000", stats.TopProducts[0].Amount.String())
}

func TestDashboard_ClientesFrecuentesOrdenados(t *testing.T) {
	hoy := time.Now().Format("2006-01-02")
	gw := &fakeGateway{invoices: []entity.Invoice{
		facturaDe(hoy, "1234567-8", "Constructora El Progreso", "1000"),
		facturaDe(hoy, "1234567-8", "Constructora El Progreso", "2000"),
		facturaDe(hoy, "1234567-8", "Constructora El Progreso", "1500"),
		facturaDe(hoy, "", "maría lópez", "9000"),
		facturaDe(hoy, "", "María López", "500"),
	}}
	uc := analytics.NewDashboardUseCase(gw)

	stats, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	// El nombre se normaliza a minúsculas cuando no hay documento
	assert.Equal(t, 2, stats.UniqueClients)
	require.Len(t, stats.FrequentClients, 2)
	assert.Equal(t, "Constructora El Progreso", stats.FrequentClients[0].Name)
	assert.Equal(t, 3, stats.FrequentClients[0].Count)
	assert.Equal(t, "4500", stats.FrequentClients[0].Amount.String())
}
