// Package purchasing orquesta órdenes de compra y recepciones de mercadería
// contra el backend remoto, aplicando la inferencia de estado del dominio
// (internal/domain/purchasing) después de cada recepción.
package purchasing

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// OrderGateway operaciones de órdenes de compra en el backend remoto.
type OrderGateway interface {
	ListOrders(ctx context.Context, params url.Values) (*backend.Page[entity.PurchaseOrder], error)
	GetOrder(ctx context.Context, id int64) (*entity.PurchaseOrder, error)
	CreateOrder(ctx context.Context, in any) (*entity.PurchaseOrder, error)
	UpdateOrder(ctx context.Context, id int64, in any) (*entity.PurchaseOrder, error)
	PatchOrderStatus(ctx context.Context, id int64, status string) (*entity.PurchaseOrder, error)
}

// ReceivingGateway operaciones de recepciones en el backend remoto.
type ReceivingGateway interface {
	ListReceivings(ctx context.Context, params url.Values) (*backend.Page[entity.Receiving], error)
	GetReceiving(ctx context.Context, id int64) (*entity.Receiving, error)
	CreateReceiving(ctx context.Context, in any) (*entity.Receiving, error)
}
