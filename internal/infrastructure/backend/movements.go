package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
)

// ListMovements lista el historial de movimientos de inventario. params
// admite producto, tipo, usuario y fecha como filtros.
func (c *Client) ListMovements(ctx context.Context, params url.Values) (*Page[entity.Movement], error) {
	var page Page[entity.Movement]
	if err := c.do(ctx, http.MethodGet, "/api/movimientos/", params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
