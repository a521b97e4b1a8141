package usecase

import (
	"context"
	"net/url"
	"strings"

	"github.com/ferreteriapro/admin-api/internal/domain/entity"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/backend"
)

// ClientUseCase casos de uso de la pantalla de clientes.
type ClientUseCase struct {
	gw *backend.Client
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(gw *backend.Client) *ClientUseCase {
	return &ClientUseCase{gw: gw}
}

// List lista clientes paginados por el backend.
func (uc *ClientUseCase) List(ctx context.Context, params url.Values) (*backend.Page[entity.Client], error) {
	return uc.gw.ListClients(ctx, params)
}

// Get obtiene un cliente por ID.
func (uc *ClientUseCase) Get(ctx context.Context, id int64) (*entity.Client, error) {
	return uc.gw.GetClient(ctx, id)
}

// SearchByDocument busca un cliente por número de documento, para el
// autocompletado del formulario de facturación. La respuesta siempre es 200:
// el campo "encontrado" indica si hubo coincidencia.
func (uc *ClientUseCase) SearchByDocument(ctx context.Context, document string) (*entity.ClientSearch, error) {
	return uc.gw.SearchClientByDocument(ctx, strings.TrimSpace(document))
}

// Create crea un cliente. El tipo de documento viaja siempre en minúsculas.
func (uc *ClientUseCase) Create(ctx context.Context, in map[string]any) (*entity.Client, error) {
	normalizeDocumentType(in)
	return uc.gw.CreateClient(ctx, in)
}

// Update reemplaza un cliente.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, in map[string]any) (*entity.Client, error) {
	normalizeDocumentType(in)
	return uc.gw.UpdateClient(ctx, id, in)
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.gw.DeleteClient(ctx, id)
}

func normalizeDocumentType(in map[string]any) {
	if v, ok := in["tipo_documento"].(string); ok {
		in["tipo_documento"] = strings.ToLower(v)
	}
}
