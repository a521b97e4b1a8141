package repository

import (
	"context"

	"github.com/ferreteriapro/admin-api/internal/domain/billing"
)

// DraftRepository persiste el borrador de factura de cada usuario entre
// sesiones (reemplaza el borrador en localStorage del cliente original).
// Un borrador por usuario; el medio de almacenamiento es intercambiable.
type DraftRepository interface {
	// Load devuelve el borrador del usuario, o domain.ErrDraftNotFound si no
	// existe o ya expiró (los borradores vencen tras el TTL configurado).
	Load(ctx context.Context, userID string) (*billing.Draft, error)
	// Save guarda (o reemplaza) el borrador del usuario.
	Save(ctx context.Context, userID string, draft *billing.Draft) error
	// Clear descarta el borrador del usuario. Limpiar un borrador inexistente
	// no es error.
	Clear(ctx context.Context, userID string) error
}
