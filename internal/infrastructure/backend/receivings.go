package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListReceivings lista recepciones de mercadería paginadas.
func (c *Client) ListReceivings(ctx context.Context, params url.Values) (*Page[entity.Receiving], error) {
	var page Page[entity.Receiving]
	if err := c.do(ctx, http.MethodGet, "/api/recepciones/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetReceiving obtiene una recepción por ID.
func (c *Client) GetReceiving(ctx context.Context, id int64) (*entity.Receiving, error) {
	var r entity.Receiving
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/recepciones/%d/", id), nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateReceiving registra una recepción. El backend incrementa el stock de
// los productos recibidos como parte de esta operación.
func (c *Client) CreateReceiving(ctx context.Context, in any) (*entity.Receiving, error) {
	var r entity.Receiving
	if err := c.do(ctx, http.MethodPost, "/api/recepciones/", nil, in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
