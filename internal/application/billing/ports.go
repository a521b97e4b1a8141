// Package billing orquesta el ciclo de vida del borrador de factura: carga y
// guardado por usuario, mutaciones con recálculo de totales, envío al backend
// y PDF de la factura emitida. El cálculo en sí vive en internal/domain/billing.
package billing

import (
	"context"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// ProductGateway lo que el borrador necesita del backend al agregar líneas:
// el producto vivo, con su stock y precio actuales.
type ProductGateway interface {
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)
}

// InvoiceGateway creación y lectura de facturas en el backend remoto.
type InvoiceGateway interface {
	CreateInvoice(ctx context.Context, payload backend.InvoicePayload) (*entity.Invoice, error)
	GetInvoiceFullData(ctx context.Context, id int64) (*entity.Invoice, error)
}

// InvoicePDFGenerator genera la representación en PDF de una factura emitida.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}
