package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListOrders lista órdenes de compra paginadas. params admite estado y
// proveedor como filtros.
func (c *Client) ListOrders(ctx context.Context, params url.Values) (*Page[entity.PurchaseOrder], error) {
	var page Page[entity.PurchaseOrder]
	if err := c.do(ctx, http.MethodGet, "/api/ordenes-compra/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder obtiene una orden de compra por ID con sus líneas.
func (c *Client) GetOrder(ctx context.Context, id int64) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/ordenes-compra/%d/", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder crea una orden de compra.
func (c *Client) CreateOrder(ctx context.Context, in any) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	if err := c.do(ctx, http.MethodPost, "/api/ordenes-compra/", nil, in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrder reemplaza una orden de compra (PUT).
func (c *Client) UpdateOrder(ctx context.Context, id int64, in any) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/ordenes-compra/%d/", id), nil, in, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// PatchOrderStatus actualiza solo el estado de la orden (PATCH). Lo usan la
// cancelación explícita y la escritura del estado inferido tras una recepción.
func (c *Client) PatchOrderStatus(ctx context.Context, id int64, status string) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	body := map[string]string{"estado": status}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/ordenes-compra/%d/", id), nil, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
