package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListProducts lista productos paginados. params admite los filtros del
// backend (page, search, categoria, activo...).
func (c *Client) ListProducts(ctx context.Context, params url.Values) (*Page[entity.Product], error) {
	var page Page[entity.Product]
	if err := c.do(ctx, http.MethodGet, "/api/productos/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductsDropdown devuelve TODOS los productos sin paginar, para los
// selectores de facturación y órdenes de compra.
func (c *Client) ProductsDropdown(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/productos/dropdown/", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// LowStockProducts productos con stock en o por debajo del mínimo.
func (c *Client) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, "/api/productos/stock-bajo/", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct obtiene un producto por ID.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/productos/%d/", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct crea un producto.
func (c *Client) CreateProduct(ctx context.Context, in any) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodPost, "/api/productos/", nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct reemplaza un producto completo (PUT).
func (c *Client) UpdateProduct(ctx context.Context, id int64, in any) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/productos/%d/", id), nil, in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PatchProductStock actualiza solo el stock disponible (PATCH).
func (c *Client) PatchProductStock(ctx context.Context, id int64, stock int64) (*entity.Product, error) {
	var p entity.Product
	body := map[string]int64{"stock_disponible": stock}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/productos/%d/", id), nil, body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct elimina un producto.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/productos/%d/", id), nil, nil, nil)
}
