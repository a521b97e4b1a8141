package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ferreteriapro/admin-api/internal/application/dto"
	"github.com/ferreteriapro/admin-api/internal/domain"
	domainbilling "github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/domain/repository"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/pkg/logger"
)

// DraftUseCase ciclo de vida del borrador de factura de un usuario:
// Vacío → En edición → Enviando → {Emitida | Falla → En edición}.
// Toda mutación recalcula totales y persiste; un envío fallido deja el
// borrador intacto para corregir y reintentar.
type DraftUseCase struct {
	repo     repository.DraftRepository
	products ProductGateway
	invoices InvoiceGateway
	log      *logger.Logger
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(
	repo repository.DraftRepository,
	products ProductGateway,
	invoices InvoiceGateway,
	log *logger.Logger,
) *DraftUseCase {
	return &DraftUseCase{repo: repo, products: products, invoices: invoices, log: log}
}

// Get devuelve el borrador del usuario con sus totales. Si no hay borrador
// (o expiró) devuelve uno nuevo vacío sin persistirlo todavía.
func (uc *DraftUseCase) Get(ctx context.Context, userID string) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.respond(draft), nil
}

// AddProduct agrega el producto al borrador validando contra el stock y el
// precio VIVOS del backend, y persiste el resultado.
func (uc *DraftUseCase) AddProduct(ctx context.Context, userID string, in dto.AddLineRequest) (*dto.DraftResponse, error) {
	product, err := uc.products.GetProduct(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto %d: %w", in.ProductID, err)
	}
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.AddLine(product, in.Quantity); err != nil {
		return nil, err
	}
	return uc.save(ctx, userID, draft)
}

// ChangeQuantity fija la cantidad de la línea index (validada contra la foto
// de stock tomada al agregar) y persiste.
func (uc *DraftUseCase) ChangeQuantity(ctx context.Context, userID string, index int, quantity int64) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.ChangeQuantity(index, quantity); err != nil {
		return nil, err
	}
	return uc.save(ctx, userID, draft)
}

// RemoveLine elimina la línea index y persiste.
func (uc *DraftUseCase) RemoveLine(ctx context.Context, userID string, index int) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.RemoveLine(index); err != nil {
		return nil, err
	}
	return uc.save(ctx, userID, draft)
}

// SetCustomer guarda los datos del cliente en el borrador. No valida aquí:
// la validación completa ocurre recién en Submit, acumulando todas las
// violaciones de una vez.
func (uc *DraftUseCase) SetCustomer(ctx context.Context, userID string, in dto.CustomerRequest) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.DocumentType != "" {
		draft.DocumentType = strings.ToLower(in.DocumentType)
	}
	draft.DocumentNumber = in.DocumentNumber
	draft.CustomerName = in.Name
	draft.CustomerEmail = in.Email
	draft.CustomerPhone = in.Phone
	draft.CustomerAddress = in.Address
	draft.Observations = in.Observations
	return uc.save(ctx, userID, draft)
}

// SetDiscount fija el descuento global. No se recorta contra el subtotal: un
// descuento mayor produce base negativa, comportamiento heredado del sistema.
func (uc *DraftUseCase) SetDiscount(ctx context.Context, userID string, discount decimal.Decimal) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft.Discount = discount
	return uc.save(ctx, userID, draft)
}

// SetExempt activa o desactiva la exoneración de IVA.
func (uc *DraftUseCase) SetExempt(ctx context.Context, userID string, exempt bool) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft.VATExempt = exempt
	return uc.save(ctx, userID, draft)
}

// Clear vacía el borrador conservando el flag de exoneración (preferencia del
// puesto de venta) y persiste el borrador vacío.
func (uc *DraftUseCase) Clear(ctx context.Context, userID string) (*dto.DraftResponse, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	draft.Clear()
	return uc.save(ctx, userID, draft)
}

// Submit valida el borrador completo y, si pasa, lo envía al backend, que
// descuenta stock, asigna número y calcula los totales autoritativos.
//
// Retorna:
//   - (factura, nil, nil)        emitida; el borrador se vacía.
//   - (nil, violaciones, nil)    el borrador incumple reglas; queda intacto.
//   - (nil, nil, err)            rechazo o caída del backend; queda intacto.
func (uc *DraftUseCase) Submit(ctx context.Context, userID string) (*entity.Invoice, []domainbilling.Violation, error) {
	draft, err := uc.load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if violations := domainbilling.ValidateForSubmission(draft); len(violations) > 0 {
		return nil, violations, nil
	}

	invoice, err := uc.invoices.CreateInvoice(ctx, toPayload(draft))
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("envío de factura rechazado; el borrador se conserva")
		return nil, nil, err
	}

	draft.Clear()
	if err := uc.repo.Save(ctx, userID, draft); err != nil {
		// La factura ya fue emitida; perder el vaciado solo deja un borrador viejo
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo vaciar el borrador tras emitir")
	}
	uc.log.Info().Str("user_id", userID).Str("numero", invoice.Number).Msg("factura emitida")
	return invoice, nil, nil
}

// load devuelve el borrador persistido o uno nuevo si no existe o expiró.
func (uc *DraftUseCase) load(ctx context.Context, userID string) (*domainbilling.Draft, error) {
	draft, err := uc.repo.Load(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrDraftNotFound) {
			return domainbilling.NewDraft(), nil
		}
		return nil, fmt.Errorf("cargar borrador: %w", err)
	}
	return draft, nil
}

func (uc *DraftUseCase) save(ctx context.Context, userID string, draft *domainbilling.Draft) (*dto.DraftResponse, error) {
	if err := uc.repo.Save(ctx, userID, draft); err != nil {
		return nil, fmt.Errorf("guardar borrador: %w", err)
	}
	return uc.respond(draft), nil
}

func (uc *DraftUseCase) respond(draft *domainbilling.Draft) *dto.DraftResponse {
	return &dto.DraftResponse{
		Draft:  *draft,
		Totals: domainbilling.ComputeTotals(draft),
	}
}

// toPayload deriva el cuerpo de POST /api/facturas/ del borrador. Los montos
// viajan como strings con 2 decimales fijos; el tipo de documento siempre en
// minúsculas. No lleva totales: el backend los recalcula.
func toPayload(d *domainbilling.Draft) backend.InvoicePayload {
	lines := make([]backend.InvoicePayloadLine, 0, len(d.Lines))
	for _, l := range d.Lines {
		lines = append(lines, backend.InvoicePayloadLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Subtotal:  l.Subtotal.StringFixed(2),
		})
	}
	return backend.InvoicePayload{
		DocumentType:    strings.ToLower(d.DocumentType),
		DocumentNumber:  strings.TrimSpace(d.DocumentNumber),
		CustomerName:    strings.TrimSpace(d.CustomerName),
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		Discount:        d.Discount.StringFixed(2),
		VATExempt:       d.VATExempt,
		Observations:    d.Observations,
		Lines:           lines,
	}
}
