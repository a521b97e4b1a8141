package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/domain/repository"
)

var _ repository.DraftRepository = (*DraftRepo)(nil)

// DraftRepo repositorio de borradores sobre PostgreSQL. Un borrador por
// usuario, serializado como JSONB.
//
// Esquema esperado:
//
//	CREATE TABLE invoice_drafts (
//	    user_id     TEXT PRIMARY KEY,
//	    payload     JSONB NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL
//	);
type DraftRepo struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

// NewDraftRepository construye el adaptador con el TTL de expiración dado.
func NewDraftRepository(pool *pgxpool.Pool, ttl time.Duration) *DraftRepo {
	return &DraftRepo{pool: pool, ttl: ttl}
}

// Load devuelve el borrador del usuario. Un borrador más viejo que el TTL se
// descarta y se reporta como inexistente, igual que el vencimiento de 24h
// del borrador original.
func (r *DraftRepo) Load(ctx context.Context, userID string) (*billing.Draft, error) {
	query := `SELECT payload, updated_at FROM invoice_drafts WHERE user_id = $1`
	var payload []byte
	var updatedAt time.Time
	err := r.pool.QueryRow(ctx, query, userID).Scan(&payload, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if time.Since(updatedAt) > r.ttl {
		_ = r.Clear(ctx, userID)
		return nil, domain.ErrDraftNotFound
	}

	var draft billing.Draft
	if err := json.Unmarshal(payload, &draft); err != nil {
		// Borrador corrupto: descartarlo es mejor que bloquear la facturación
		_ = r.Clear(ctx, userID)
		return nil, domain.ErrDraftNotFound
	}
	return &draft, nil
}

// Save guarda (o reemplaza) el borrador del usuario.
func (r *DraftRepo) Save(ctx context.Context, userID string, draft *billing.Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("serializar draft: %w", err)
	}
	query := `
		INSERT INTO invoice_drafts (user_id, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET payload = $2, updated_at = $3`
	if _, err := r.pool.Exec(ctx, query, userID, payload, time.Now()); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// Clear descarta el borrador del usuario. Idempotente.
func (r *DraftRepo) Clear(ctx context.Context, userID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM invoice_drafts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}
