package usecase

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/pkg/text"
)

// SupplierUseCase casos de uso de la pantalla de proveedores.
type SupplierUseCase struct {
	gw *backend.Client
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(gw *backend.Client) *SupplierUseCase {
	return &SupplierUseCase{gw: gw}
}

// List lista proveedores paginados por el backend.
func (uc *SupplierUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Supplier], error) {
	return uc.gw.ListSuppliers(ctx, params)
}

// Dropdown proveedores para el selector de órdenes de compra, filtrados
// localmente por nombre o contacto sin distinguir mayúsculas ni acentos.
func (uc *SupplierUseCase) Dropdown(ctx context.Context, search string) ([]entity.Supplier, error) {
	suppliers, err := uc.gw.SuppliersDropdown(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return suppliers, nil
	}
	filtered := make([]entity.Supplier, 0, len(suppliers))
	for _, s := range suppliers {
		if text.ContainsFold(s.Name, search) || text.ContainsFold(s.Contact, search) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Get obtiene un proveedor por ID.
func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*entity.Supplier, error) {
	return uc.gw.GetSupplier(ctx, id)
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(ctx context.Context, in map[string]any) (*entity.Supplier, error) {
	return uc.gw.CreateSupplier(ctx, in)
}

// Update reemplaza un proveedor.
func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in map[string]any) (*entity.Supplier, error) {
	return uc.gw.UpdateSupplier(ctx, id, in)
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return uc.gw.DeleteSupplier(ctx, id)
}
