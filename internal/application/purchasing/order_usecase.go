package purchasing

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	domainpurchasing "github.com/ferreteriapro/admin-api/internal/domain/purchasing"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// OrderResponse una orden de compra más el estado inferido de sus cantidades.
// EstadoInferido es consultivo: el estado del backend sigue siendo el real.
type OrderResponse struct {
	entity.PurchaseOrder
	InferredStatus string `json:"estado_inferido"`
}

// OrderUseCase casos de uso de la pantalla de órdenes de compra.
type OrderUseCase struct {
	gw OrderGateway
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(gw OrderGateway) *OrderUseCase {
	return &OrderUseCase{gw: gw}
}

// List lista órdenes (filtros estado/proveedor pasan al backend) anotando en
// cada una el estado inferido.
func (uc *OrderUseCase) List(ctx context.Context, params url.Values) (*backend.Page[OrderResponse], error) {
	page, err := uc.gw.ListOrders(ctx, params)
	if err != nil {
		return nil, err
	}
	out := &backend.Page[OrderResponse]{
		Count:    page.Count,
		Next:     page.Next,
		Previous: page.Previous,
		Results:  make([]OrderResponse, 0, len(page.Results)),
	}
	for _, o := range page.Results {
		out.Results = append(out.Results, toOrderResponse(o))
	}
	return out, nil
}

// Get obtiene una orden con sus líneas y el estado inferido.
func (uc *OrderUseCase) Get(ctx context.Context, id int64) (*OrderResponse, error) {
	o, err := uc.gw.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

// Create crea una orden de compra.
func (uc *OrderUseCase) Create(ctx context.Context, in map[string]any) (*OrderResponse, error) {
	o, err := uc.gw.CreateOrder(ctx, in)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

// Update reemplaza una orden de compra.
func (uc *OrderUseCase) Update(ctx context.Context, id int64, in map[string]any) (*OrderResponse, error) {
	o, err := uc.gw.UpdateOrder(ctx, id, in)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*o)
	return &resp, nil
}

// Cancel marca la orden como cancelada. Solo órdenes pendientes o parciales
// pueden cancelarse; una completa ya movió stock.
func (uc *OrderUseCase) Cancel(ctx context.Context, id int64) (*OrderResponse, error) {
	o, err := uc.gw.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status == entity.OrderComplete {
		return nil, fmt.Errorf("%w: una orden completa no puede cancelarse", domain.ErrConflict)
	}
	if o.Status == entity.OrderCancelled {
		resp := toOrderResponse(*o)
		return &resp, nil
	}
	updated, err := uc.gw.PatchOrderStatus(ctx, id, entity.OrderCancelled)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*updated)
	return &resp, nil
}

func toOrderResponse(o entity.PurchaseOrder) OrderResponse {
	return OrderResponse{
		PurchaseOrder:  o,
		InferredStatus: domainpurchasing.InferStatus(&o),
	}
}
