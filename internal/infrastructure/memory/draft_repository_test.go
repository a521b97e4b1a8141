package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferreteriapro/admin-api/internal/domain"
	"github.com/ferreteriapro/admin-api/internal/domain/billing"
	"github.com/ferreteriapro/admin-api/internal/infrastructure/memory"
)

func TestDraftRepo_GuardaYRecupera(t *testing.T) {
	repo := memory.NewDraftRepository(time.Hour)
	ctx := context.Background()

	draft := billing.NewDraft()
	draft.CustomerName = "María López"
	require.NoError(t, repo.Save(ctx, "7", draft))

	got, err := repo.Load(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "María López", got.CustomerName)

	// Lo guardado es una copia: mutar el original no afecta lo persistido
	draft.CustomerName = "Otro"
	got, err = repo.Load(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, "María López", got.CustomerName)
}

func TestDraftRepo_InexistenteEsNotFound(t *testing.T) {
	repo := memory.NewDraftRepository(time.Hour)
	_, err := repo.Load(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftRepo_ExpiraPorTTL(t *testing.T) {
	repo := memory.NewDraftRepository(time.Millisecond)
	ctx := context.Background()

	draft := billing.NewDraft()
	draft.UpdatedAt = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Save(ctx, "7", draft))

	_, err := repo.Load(ctx, "7")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound, "un borrador viejo se descarta como el de 24h original")
}

func TestDraftRepo_ClearEsIdempotente(t *testing.T) {
	repo := memory.NewDraftRepository(time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "7", billing.NewDraft()))
	require.NoError(t, repo.Clear(ctx, "7"))
	require.NoError(t, repo.Clear(ctx, "7"))

	_, err := repo.Load(ctx, "7")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}
