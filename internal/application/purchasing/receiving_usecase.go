package purchasing

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	domainpurchasing "github.com/ferreteriapro/admin-api/internal/domain/purchasing"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/pkg/logger"
)

// ReceivingUseCase registro de recepciones de mercadería. Tras registrar una
// recepción, el backend incrementa el stock pero NO recalcula el estado de la
// orden: eso se hace aquí, releyendo la orden y escribiendo el estado inferido
// solo si cambió.
type ReceivingUseCase struct {
	receivings ReceivingGateway
	orders     OrderGateway
	log        *logger.Logger
}

// NewReceivingUseCase construye el caso de uso.
func NewReceivingUseCase(receivings ReceivingGateway, orders OrderGateway, log *logger.Logger) *ReceivingUseCase {
	return &ReceivingUseCase{receivings: receivings, orders: orders, log: log}
}

// List lista recepciones paginadas por el backend.
func (uc *ReceivingUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Receiving], error) {
	return uc.receivings.ListReceivings(ctx, params)
}

// Get obtiene una recepción por ID.
func (uc *ReceivingUseCase) Get(ctx context.Context, id int64) (*entity.Receiving, error) {
	return uc.receivings.GetReceiving(ctx, id)
}

// Create registra la recepción y sincroniza el estado de la orden asociada:
//
//  1. POST /api/recepciones/        (el backend suma stock)
//  2. GET  /api/ordenes-compra/:id/ (cantidades recibidas actualizadas)
//  3. si InferStatus difiere del estado actual, PATCH con el inferido.
//
// El paso 3 es leer-inferir-escribir sin transacción: dos recepciones
// simultáneas sobre la misma orden pueden pisarse el estado. Se reproduce el
// comportamiento heredado; la cifra autoritativa sigue en el backend.
func (uc *ReceivingUseCase) Create(ctx context.Context, in map[string]any) (*entity.Receiving, error) {
	receiving, err := uc.receivings.CreateReceiving(ctx, in)
	if err != nil {
		return nil, err
	}

	order, err := uc.orders.GetOrder(ctx, receiving.OrderID)
	if err != nil {
		// La recepción ya quedó registrada; solo falló la sincronía de estado
		uc.log.Warn().Err(err).Int64("orden", receiving.OrderID).
			Msg("recepción registrada pero no se pudo releer la orden")
		return receiving, nil
	}

	inferred := domainpurchasing.InferStatus(order)
	if inferred != order.Status && order.Status != entity.OrderCancelled {
		if _, err := uc.orders.PatchOrderStatus(ctx, order.ID, inferred); err != nil {
			uc.log.Warn().Err(err).Int64("orden", order.ID).Str("estado", inferred).
				Msg("no se pudo actualizar el estado inferido de la orden")
			return receiving, nil
		}
		uc.log.Info().Int64("orden", order.ID).Str("numero", order.Number).
			Str("de", order.Status).Str("a", inferred).
			Msg("estado de la orden actualizado tras recepción")
	}
	return receiving, nil
}
