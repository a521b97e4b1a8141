// Package usecase contiene los casos de uso de los recursos CRUD que esta
// aplicación solo orquesta contra el backend remoto: productos, clientes,
// proveedores, facturas y movimientos. La lógica que sí vive aquí (filtros
// de dropdown, agregaciones) es la que el backend no expone.
package usecase

import (
	"context"
	"net/url"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
	"github.com/ferreteriapro/admin-api/pkg/text"
)

// ProductUseCase casos de uso de la pantalla de productos.
type ProductUseCase struct {
	gw *backend.Client
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(gw *backend.Client) *ProductUseCase {
	return &ProductUseCase{gw: gw}
}

// List lista productos; los filtros (page, search, categoria...) se pasan tal
// cual al backend, que es quien pagina.
func (uc *ProductUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Product], error) {
	return uc.gw.ListProducts(ctx, params)
}

// Dropdown devuelve los productos activos para los selectores de facturación
// y órdenes de compra, filtrados localmente por nombre, marca o código sin
// distinguir mayúsculas ni acentos ("taladro" encuentra "Taládro").
func (uc *ProductUseCase) Dropdown(ctx context.Context, search string) ([]entity.Product, error) {
	products, err := uc.gw.ProductsDropdown(ctx)
	if err != nil {
		return nil, err
	}
	if search == "" {
		return products, nil
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if text.ContainsFold(p.Name, search) ||
			text.ContainsFold(p.Brand, search) ||
			text.ContainsFold(p.Code, search) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// LowStock productos con stock en o por debajo del mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]entity.Product, error) {
	return uc.gw.LowStockProducts(ctx)
}

// Get obtiene un producto por ID.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.gw.GetProduct(ctx, id)
}

// Create crea un producto en el backend.
func (uc *ProductUseCase) Create(ctx context.Context, in map[string]any) (*entity.Product, error) {
	return uc.gw.CreateProduct(ctx, in)
}

// Update reemplaza un producto en el backend.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in map[string]any) (*entity.Product, error) {
	return uc.gw.UpdateProduct(ctx, id, in)
}

// PatchStock ajusta solo el stock disponible.
func (uc *ProductUseCase) PatchStock(ctx context.Context, id, stock int64) (*entity.Product, error) {
	return uc.gw.PatchProductStock(ctx, id, stock)
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.gw.DeleteProduct(ctx, id)
}
