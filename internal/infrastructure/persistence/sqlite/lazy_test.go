package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	lazy := sqlite.NewLazyDB(path)
	assert.Equal(t, path, lazy.Path())
	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close(), "closing an unopened db is a no-op")
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	var wg sync.WaitGroup
	dbs := make([]any, goroutines)
	errs := make([]error, goroutines)
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyLayoutStateRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "nested", "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyLayoutStateRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	summaries, err := repo.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, repo.SaveSnapshot(ctx, "main", sampleState()))
	stored, err := repo.GetSnapshot(ctx, "main")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 3, stored.State.TileCount())
}
