package usecase

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// InvoiceUseCase consulta de facturas emitidas. La creación vive en
// billing.DraftUseCase (envío del borrador); aquí solo lectura y anulación.
type InvoiceUseCase struct {
	gw *backend.Client
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(gw *backend.Client) *InvoiceUseCase {
	return &InvoiceUseCase{gw: gw}
}

// List lista facturas paginadas por el backend (filtros: fecha, cliente...).
func (uc *InvoiceUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Invoice], error) {
	return uc.gw.ListInvoices(ctx, params)
}

// Get obtiene una factura por ID.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*entity.Invoice, error) {
	return uc.gw.GetInvoice(ctx, id)
}

// FullData obtiene la factura con los datos denormalizados del detalle.
func (uc *InvoiceUseCase) FullData(ctx context.Context, id int64) (*entity.Invoice, error) {
	return uc.gw.GetInvoiceFullData(ctx, id)
}

// Delete anula una factura.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	return uc.gw.DeleteInvoice(ctx, id)
}
