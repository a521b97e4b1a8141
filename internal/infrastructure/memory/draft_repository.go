// Package memory implementa repositorios en memoria para desarrollo y tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo repositorio de borradores en memoria. No sobrevive reinicios;
// suficiente para desarrollo local y para los tests de la capa de aplicación.
type DraftRepo struct {
	mu     sync.RWMutex
	ttl    time.Duration
	drafts map[string]*billing.Draft
}

// NewDraftRepository construye el repositorio con el TTL de expiración dado.
func NewDraftRepository(ttl time.Duration) *DraftRepo {
	return &DraftRepo{
		ttl:    ttl,
		drafts: make(map[string]*billing.Draft),
	}
}

// Load devuelve una copia del borrador del usuario, o domain.ErrDraftNotFound
// si no existe o expiró.
func (r *DraftRepo) Load(_ context.Context, userID string) (*billing.Draft, error) {
	r.mu.RLock()
	d, ok := r.drafts[userID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if time.Since(d.UpdatedAt) > r.ttl {
		// Expirado: se descarta igual que el borrador de 24h del cliente original
		r.mu.Lock()
		delete(r.drafts, userID)
		r.mu.Unlock()
		return nil, domain.ErrDraftNotFound
	}
	copia := *d
	copia.Lines = append([]billing.Line(nil), d.Lines...)
	return &copia, nil
}

// Save guarda una copia del borrador.
func (r *DraftRepo) Save(_ context.Context, userID string, draft *billing.Draft) error {
	copia := *draft
	copia.Lines = append([]billing.Line(nil), draft.Lines...)
	r.mu.Lock()
	r.drafts[userID] = &copia
	r.mu.Unlock()
	return nil
}

// Clear descarta el borrador del usuario. Idempotente.
func (r *DraftRepo) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	delete(r.drafts, userID)
	r.mu.Unlock()
	return nil
}
