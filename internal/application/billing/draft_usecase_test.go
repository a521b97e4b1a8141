package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/ferreteriapro/admin-api/internal/application/billing"
	"github.com/ferreteriapro/admin-api/internal/application/dto"
	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/memory"
	"github.com/ferreteriapro/admin-api/pkg/logger"
)

const testUser = "7"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de gateway
// ──────────────────────────────────────────────────────────────────────────────

type fakeProducts struct {
	products map[int64]*entity.Product
}

func (f *fakeProducts) GetProduct(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *p
	return &copia, nil
}

type fakeInvoices struct {
	payloads []backend.InvoicePayload
	invoice  *entity.Invoice
	err      error
}

func (f *fakeInvoices) CreateInvoice(_ context.Context, payload backend.InvoicePayload) (*entity.Invoice, error) {
	f.payloads = append(f.payloads, payload)
	if f.err != nil {
		return nil, f.err
	}
	return f.invoice, nil
}

func (f *fakeInvoices) GetInvoiceFullData(_ context.Context, _ int64) (*entity.Invoice, error) {
	return f.invoice, nil
}

func precio(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// nuevoUC arma el caso de uso con repo en memoria y los fakes dados.
func nuevoUC(products *fakeProducts, invoices *fakeInvoices) *appbilling.DraftUseCase {
	repo := memory.NewDraftRepository(24 * time.Hour)
	return appbilling.NewDraftUseCase(repo, products, invoices, logger.NewNop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones del borrador
// ──────────────────────────────────────────────────────────────────────────────

func TestDraftUseCase_AgregarProductoPersisteYCalcula(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", UnitPrice: precio("12500"), Stock: 10},
	}}
	uc := nuevoUC(products, &fakeInvoices{})

	out, err := uc.AddProduct(context.Background(), testUser, dto.AddLineRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, out.Draft.Lines, 1)
	assert.Equal(t, "37500", out.Totals.Subtotal.String())

	// El borrador quedó persistido: una lectura posterior lo devuelve igual
	again, err := uc.Get(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, again.Draft.Lines, 1)
	assert.Equal(t, int64(3), again.Draft.Lines[0].Quantity)
}

func TestDraftUseCase_StockInsuficienteNoPersiste(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", UnitPrice: precio("12500"), Stock: 2},
	}}
	uc := nuevoUC(products, &fakeInvoices{})

	_, err := uc.AddProduct(context.Background(), testUser, dto.AddLineRequest{ProductID: 1, Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	out, err := uc.Get(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, out.Draft.Lines, "el intento fallido no debe dejar rastro")
}

func TestDraftUseCase_DescuentoYExoneracionRecalculan(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", UnitPrice: precio("12500"), Stock: 10},
	}}
	uc := nuevoUC(products, &fakeInvoices{})
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, testUser, dto.AddLineRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)

	out, err := uc.SetDiscount(ctx, testUser, decimal.RequireFromString("5000"))
	require.NoError(t, err)
	assert.Equal(t, "32500", out.Totals.TaxableBase.String())
	assert.Equal(t, "3250", out.Totals.Tax.String())
	assert.Equal(t, "35750", out.Totals.Total.String())

	out, err = uc.SetExempt(ctx, testUser, true)
	require.NoError(t, err)
	assert.True(t, out.Totals.Tax.IsZero())
	assert.Equal(t, "32500", out.Totals.Total.String())
}

func TestDraftUseCase_ClearConservaExoneracion(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", UnitPrice: precio("100"), Stock: 10},
	}}
	uc := nuevoUC(products, &fakeInvoices{})
	ctx := context.Background()

	_, err := uc.AddProduct(ctx, testUser, dto.AddLineRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.SetExempt(ctx, testUser, true)
	require.NoError(t, err)

	out, err := uc.Clear(ctx, testUser)
	require.NoError(t, err)
	assert.Empty(t, out.Draft.Lines)
	assert.True(t, out.Draft.VATExempt, "la exoneración es preferencia del puesto, sobrevive al vaciado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Envío
// ──────────────────────────────────────────────────────────────────────────────

// armarBorradorValido deja un borrador listo para emitir.
func armarBorradorValido(t *testing.T, uc *appbilling.DraftUseCase) {
	t.Helper()
	ctx := context.Background()
	_, err := uc.AddProduct(ctx, testUser, dto.AddLineRequest{ProductID: 1, Quantity: 3})
	require.NoError(t, err)
	_, err = uc.SetCustomer(ctx, testUser, dto.CustomerRequest{
		DocumentType:   "RUC",
		DocumentNumber: "1234567-8",
		Name:           "Constructora El Progreso",
	})
	require.NoError(t, err)
	_, err = uc.SetDiscount(ctx, testUser, decimal.RequireFromString("5000"))
	require.NoError(t, err)
}

func TestDraftUseCase_SubmitInvalidoDevuelveTodasLasViolaciones(t *testing.T) {
	invoices := &fakeInvoices{}
	uc := nuevoUC(&fakeProducts{products: map[int64]*entity.Product{}}, invoices)

	// Borrador vacío: sin cliente y sin líneas
	inv, violations, err := uc.Submit(context.Background(), testUser)
	require.NoError(t, err)
	assert.Nil(t, inv)
	require.NotEmpty(t, violations)
	assert.Empty(t, invoices.payloads, "un borrador inválido nunca llega al backend")

	mensajes := make([]string, 0, len(violations))
	for _, v := range violations {
		mensajes = append(mensajes, v.Message)
	}
	assert.Contains(t, mensajes, "El nombre del cliente es obligatorio")
	assert.Contains(t, mensajes, "Debe incluir al menos un producto")
}

func TestDraftUseCase_SubmitEmiteYVaciaElBorrador(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", Code: "FER-001", UnitPrice: precio("12500"), Stock: 10},
	}}
	invoices := &fakeInvoices{invoice: &entity.Invoice{ID: 42, Number: "F-0042"}}
	uc := nuevoUC(products, invoices)
	armarBorradorValido(t, uc)

	inv, violations, err := uc.Submit(context.Background(), testUser)
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, inv)
	assert.Equal(t, "F-0042", inv.Number)

	// Payload derivado: montos como strings con 2 decimales fijos
	require.Len(t, invoices.payloads, 1)
	payload := invoices.payloads[0]
	assert.Equal(t, "ruc", payload.DocumentType, "el tipo de documento viaja en minúsculas")
	assert.Equal(t, "5000.00", payload.Discount)
	require.Len(t, payload.Lines, 1)
	assert.Equal(t, "12500.00", payload.Lines[0].UnitPrice)
	assert.Equal(t, "37500.00", payload.Lines[0].Subtotal)

	// Borrador vaciado tras la emisión
	out, err := uc.Get(context.Background(), testUser)
	require.NoError(t, err)
	assert.Empty(t, out.Draft.Lines)
	assert.Empty(t, out.Draft.CustomerName)
}

func TestDraftUseCase_RechazoDelBackendConservaElBorrador(t *testing.T) {
	products := &fakeProducts{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Martillo", UnitPrice: precio("12500"), Stock: 10},
	}}
	invoices := &fakeInvoices{err: &backend.RemoteError{Status: 400, Message: "Stock insuficiente para Martillo"}}
	uc := nuevoUC(products, invoices)
	armarBorradorValido(t, uc)

	inv, violations, err := uc.Submit(context.Background(), testUser)
	require.Error(t, err)
	assert.Nil(t, inv)
	assert.Empty(t, violations)

	// El borrador sigue completo para corregir y reintentar
	out, getErr := uc.Get(context.Background(), testUser)
	require.NoError(t, getErr)
	assert.Len(t, out.Draft.Lines, 1)
	assert.Equal(t, "Constructora El Progreso", out.Draft.CustomerName)
}
