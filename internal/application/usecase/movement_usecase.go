package usecase

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// MovementUseCase historial de movimientos de inventario (solo lectura).
type MovementUseCase struct {
	gw *backend.Client
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(gw *backend.Client) *MovementUseCase {
	return &MovementUseCase{gw: gw}
}

// List lista movimientos; filtros (producto, tipo, usuario, fecha) pasan al backend.
func (uc *MovementUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Movement], error) {
	return uc.gw.ListMovements(ctx, params)
}
