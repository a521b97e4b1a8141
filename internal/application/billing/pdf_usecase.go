package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/ferreteriapro/admin-api/internal/domain"
)

// PDFUseCase genera la representación en PDF de una factura ya emitida.
type PDFUseCase struct {
	invoices  InvoiceGateway
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices InvoiceGateway, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, generator: generator}
}

// DownloadInvoicePDF trae la factura con sus datos completos del backend y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int64) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetInvoiceFullData(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	number := strings.ReplaceAll(inv.Number, "/", "-")
	if number == "" {
		number = fmt.Sprintf("%d", inv.ID)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", number), nil
}
