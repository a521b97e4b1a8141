package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListClients lista clientes paginados.
func (c *Client) ListClients(ctx context.Context, params url.Values) (*Page[entity.Client], error) {
	var page Page[entity.Client]
	if err := c.do(ctx, http.MethodGet, "/api/clientes/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetClient obtiene un cliente por ID.
func (c *Client) GetClient(ctx context.Context, id int64) (*entity.Client, error) {
	var cl entity.Client
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/clientes/%d/", id), nil, nil, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// SearchClientByDocument busca un cliente por número de documento para el
// autocompletado del formulario de facturación.
func (c *Client) SearchClientByDocument(ctx context.Context, document string) (*entity.ClientSearch, error) {
	var out entity.ClientSearch
	body := map[string]string{"numero_documento": document}
	if err := c.do(ctx, http.MethodPost, "/api/clientes/buscar_por_documento/", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient crea un cliente.
func (c *Client) CreateClient(ctx context.Context, in any) (*entity.Client, error) {
	var cl entity.Client
	if err := c.do(ctx, http.MethodPost, "/api/clientes/", nil, in, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// UpdateClient reemplaza un cliente (PUT).
func (c *Client) UpdateClient(ctx context.Context, id int64, in any) (*entity.Client, error) {
	var cl entity.Client
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/clientes/%d/", id), nil, in, &cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

// DeleteClient elimina un cliente.
func (c *Client) DeleteClient(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/clientes/%d/", id), nil, nil, nil)
}
