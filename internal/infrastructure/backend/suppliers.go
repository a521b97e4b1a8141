package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListSuppliers lista proveedores paginados.
func (c *Client) ListSuppliers(ctx context.Context, params url.Values) (*Page[entity.Supplier], error) {
	var page Page[entity.Supplier]
	if err := c.do(ctx, http.MethodGet, "/api/proveedores/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SuppliersDropdown devuelve todos los proveedores sin paginar.
func (c *Client) SuppliersDropdown(ctx context.Context) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier
	if err := c.do(ctx, http.MethodGet, "/api/proveedores/dropdown/", nil, nil, &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetSupplier obtiene un proveedor por ID.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/proveedores/%d/", id), nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSupplier crea un proveedor.
func (c *Client) CreateSupplier(ctx context.Context, in any) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := c.do(ctx, http.MethodPost, "/api/proveedores/", nil, in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSupplier reemplaza un proveedor (PUT).
func (c *Client) UpdateSupplier(ctx context.Context, id int64, in any) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/proveedores/%d/", id), nil, in, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSupplier elimina un proveedor.
func (c *Client) DeleteSupplier(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/proveedores/%d/", id), nil, nil, nil)
}
