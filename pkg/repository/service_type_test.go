package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTypeRepository_FindOrCreateIdentity(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	first, err := repos.ServiceType.FindOrCreateIdentity(ctx, "manifold/builtin", "wfs")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "manifold/builtin", first.ModuleName)
	assert.Equal(t, "wfs", first.PluginServiceTypeID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repos.ServiceType.FindOrCreateIdentity(ctx, "manifold/builtin", "wfs")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := repos.ServiceType.FindOrCreateIdentity(ctx, "other/module", "wfs")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	all, err := repos.ServiceType.ListIdentities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestServiceTypeRepository_Concurrent(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 10)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ident, err := repos.ServiceType.FindOrCreateIdentity(ctx, "manifold/builtin", "georss")
			if assert.NoError(t, err) {
				ids[i] = ident.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	all, err := repos.ServiceType.ListIdentities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestServiceTypeRepository_GetIdentity(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ident, err := repos.ServiceType.FindOrCreateIdentity(ctx, "manifold/builtin", "wfs")
	require.NoError(t, err)

	got, err := repos.ServiceType.GetIdentity(ctx, ident.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ident.ID, got.ID)
	assert.Equal(t, "manifold/builtin/wfs", got.QualifiedName())

	missing, err := repos.ServiceType.GetIdentity(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
