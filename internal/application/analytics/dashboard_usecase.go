// Package analytics calcula el tablero del negocio del lado del gateway:
// agrega las facturas y productos que trae el backend, que no expone
// endpoints de reportes.
package analytics

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/application/dto"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

const dashboardTop = 5 // entradas por widget (clientes, marcas, productos)

// Gateway lo que el tablero necesita del backend remoto.
type Gateway interface {
	ListInvoices(ctx context.Context, params url.Values) (*backend.Page[entity.Invoice], error)
	ProductsDropdown(ctx context.Context) ([]entity.Product, error)
	LowStockProducts(ctx context.Context) ([]entity.Product, error)
}

// DashboardUseCase genera el resumen de ventas del día y del mes en curso.
type DashboardUseCase struct {
	gw Gateway
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(gw Gateway) *DashboardUseCase {
	return &DashboardUseCase{gw: gw}
}

// GetStats construye el DashboardStats del mes en curso.
//
// Tres llamadas en paralelo:
//  1. facturas del mes (todas las páginas)  → ventas, clientes, tops
//  2. dropdown de productos                 → marca por producto
//  3. stock bajo                            → contador de alerta
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStats, error) {
	now := time.Now()

	type invoicesResult struct {
		invoices []entity.Invoice
		err      error
	}
	type productsResult struct {
		products []entity.Product
		err      error
	}
	type lowStockResult struct {
		count int
		err   error
	}

	invCh := make(chan invoicesResult, 1)
	prodCh := make(chan productsResult, 1)
	lowCh := make(chan lowStockResult, 1)

	go func() {
		invoices, err := uc.monthInvoices(ctx, now)
		invCh <- invoicesResult{invoices, err}
	}()
	go func() {
		products, err := uc.gw.ProductsDropdown(ctx)
		prodCh <- productsResult{products, err}
	}()
	go func() {
		low, err := uc.gw.LowStockProducts(ctx)
		lowCh <- lowStockResult{len(low), err}
	}()

	inv := <-invCh
	prod := <-prodCh
	low := <-lowCh

	if inv.err != nil {
		return nil, fmt.Errorf("dashboard: facturas del mes: %w", inv.err)
	}
	if prod.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", prod.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}

	stats := aggregate(inv.invoices, prod.products, now)
	stats.LowStockCount = low.count
	return stats, nil
}

// monthInvoices trae TODAS las páginas de facturas del mes en curso siguiendo
// la paginación del backend.
func (uc *DashboardUseCase) monthInvoices(ctx context.Context, now time.Time) ([]entity.Invoice, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var all []entity.Invoice
	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("page", strconv.Itoa(page))
		params.Set("fecha_desde", monthStart.Format("2006-01-02"))
		result, err := uc.gw.ListInvoices(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, result.Results...)
		if result.Next == nil {
			break
		}
	}
	return all, nil
}

// aggregate computa todas las métricas en una sola pasada por las facturas.
func aggregate(invoices []entity.Invoice, products []entity.Product, now time.Time) *dto.DashboardStats {
	today := now.Format("2006-01-02")

	brandByProduct := make(map[int64]string, len(products))
	for _, p := range products {
		brandByProduct[p.ID] = p.Brand
	}

	type clientAgg struct {
		name     string
		document string
		count    int
		amount   decimal.Decimal
	}
	type productAgg struct {
		name   string
		units  int64
		amount decimal.Decimal
	}

	stats := &dto.DashboardStats{
		SalesToday: decimal.Zero,
		SalesMonth: decimal.Zero,
		MonthLabel: monthLabel(now),
	}
	byDay := make(map[string]*dto.SalesByDay)
	clients := make(map[string]*clientAgg)
	brands := make(map[string]int64)
	topProducts := make(map[int64]*productAgg)

	for _, inv := range invoices {
		day := invoiceDay(inv.Date)

		stats.SalesMonth = stats.SalesMonth.Add(inv.Total)
		stats.InvoicesMonth++
		if day == today {
			stats.SalesToday = stats.SalesToday.Add(inv.Total)
			stats.InvoicesToday++
		}

		if d, ok := byDay[day]; ok {
			d.Total = d.Total.Add(inv.Total)
			d.Invoices++
		} else {
			byDay[day] = &dto.SalesByDay{Date: day, Total: inv.Total, Invoices: 1}
		}

		// Clave de cliente: documento si hay, si no el nombre
		key := strings.TrimSpace(inv.DocumentNumber)
		if key == "" {
			key = strings.ToLower(strings.TrimSpace(inv.CustomerName))
		}
		if key != "" {
			if c, ok := clients[key]; ok {
				c.count++
				c.amount = c.amount.Add(inv.Total)
			} else {
				clients[key] = &clientAgg{
					name:     inv.CustomerName,
					document: inv.DocumentNumber,
					count:    1,
					amount:   inv.Total,
				}
			}
		}

		for _, l := range inv.Lines {
			if brand := brandByProduct[l.ProductID]; brand != "" {
				brands[brand] += l.Quantity
			}
			if p, ok := topProducts[l.ProductID]; ok {
				p.units += l.Quantity
				p.amount = p.amount.Add(l.Subtotal)
			} else {
				topProducts[l.ProductID] = &productAgg{
					name:   l.ProductName,
					units:  l.Quantity,
					amount: l.Subtotal,
				}
			}
		}
	}
	stats.UniqueClients = len(clients)

	// Ventas por día: los últimos 7 días siempre presentes, aun en cero
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		if d, ok := byDay[day]; ok {
			stats.SalesByDay = append(stats.SalesByDay, *d)
		} else {
			stats.SalesByDay = append(stats.SalesByDay, dto.SalesByDay{Date: day, Total: decimal.Zero})
		}
	}

	for _, c := range clients {
		stats.FrequentClients = append(stats.FrequentClients, dto.FrequentClient{
			Name:     c.name,
			Document: c.document,
			Count:    c.count,
			Amount:   c.amount,
		})
	}
	sort.Slice(stats.FrequentClients, func(i, j int) bool {
		a, b := stats.FrequentClients[i], stats.FrequentClients[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Amount.GreaterThan(b.Amount)
	})
	stats.FrequentClients = top(stats.FrequentClients)

	for brand, units := range brands {
		stats.PopularBrands = append(stats.PopularBrands, dto.PopularBrand{Brand: brand, Units: units})
	}
	sort.Slice(stats.PopularBrands, func(i, j int) bool {
		a, b := stats.PopularBrands[i], stats.PopularBrands[j]
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return a.Brand < b.Brand
	})
	stats.PopularBrands = top(stats.PopularBrands)

	for id, p := range topProducts {
		stats.TopProducts = append(stats.TopProducts, dto.TopProduct{
			ProductID: id,
			Name:      p.name,
			Units:     p.units,
			Amount:    p.amount,
		})
	}
	sort.Slice(stats.TopProducts, func(i, j int) bool {
		a, b := stats.TopProducts[i], stats.TopProducts[j]
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return a.Amount.GreaterThan(b.Amount)
	})
	stats.TopProducts = top(stats.TopProducts)

	return stats
}

func top[T any](s []T) []T {
	if len(s) > dashboardTop {
		return s[:dashboardTop]
	}
	return s
}

// invoiceDay recorta la fecha de la factura a YYYY-MM-DD; el backend a veces
// incluye la hora.
func invoiceDay(date string) string {
	if len(date) >= 10 {
		return date[:10]
	}
	return date
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
