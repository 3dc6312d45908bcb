package snapshot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/domain/entity"
	repomocks "github.com/bnema/tessera/internal/domain/repository/mocks"
)

type testProvider struct {
	id    entity.WorkspaceID
	state *entity.SessionState
}

func (p *testProvider) ID() entity.WorkspaceID         { return p.id }
func (p *testProvider) Snapshot() *entity.SessionState { return p.state }

func singleTile() *entity.SessionState {
	return &entity.SessionState{
		Layout:        entity.NewLeaf("t1", "t1"),
		Tiles:         []entity.TileRecord{{ID: "t1", URL: "https://example.com"}},
		FocusedTileID: "t1",
	}
}

func TestService_SaveSnapshot_RetriesBusyDatabase(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	calls := 0
	repo.EXPECT().
		SaveSnapshot(mock.Anything, entity.WorkspaceID("main"), mock.AnythingOfType("*entity.SessionState")).
		RunAndReturn(func(context.Context, entity.WorkspaceID, *entity.SessionState) error {
			calls++
			if calls == 1 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		})

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo), &testProvider{id: "main", state: singleTile()}, 1)
	svc.retryDelay = time.Millisecond
	svc.ready = true
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_PermanentErrorKeepsDirty(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	permanent := errors.New("no such table: layout_states")
	repo.EXPECT().SaveSnapshot(mock.Anything, mock.Anything, mock.Anything).Return(permanent).Once()

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo), &testProvider{id: "main", state: singleTile()}, 1)
	svc.retryDelay = time.Millisecond
	svc.ready = true
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, permanent)
	assert.True(t, svc.dirty)
}

func TestService_NotReadyDefersSave(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo), &testProvider{id: "main", state: singleTile()}, 1)
	svc.dirty = true

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.True(t, svc.dirty, "pending snapshot is kept until ready")
}

func TestService_MarkDirtyDebounces(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	var saves atomic.Int32
	saved := make(chan struct{}, 4)
	repo.EXPECT().SaveSnapshot(mock.Anything, entity.WorkspaceID("main"), mock.Anything).
		RunAndReturn(func(context.Context, entity.WorkspaceID, *entity.SessionState) error {
			saves.Add(1)
			saved <- struct{}{}
			return nil
		})

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo), &testProvider{id: "main", state: singleTile()}, 20)
	svc.Start(context.Background())
	svc.SetReady()

	for i := 0; i < 5; i++ {
		svc.MarkDirty()
	}

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced snapshot was never saved")
	}
	require.NoError(t, svc.Stop(context.Background()))
	assert.Equal(t, int32(1), saves.Load())
}

func TestService_StopFlushesDirtyState(t *testing.T) {
	repo := repomocks.NewMockLayoutStateRepository(t)
	repo.EXPECT().SaveSnapshot(mock.Anything, entity.WorkspaceID("main"), mock.Anything).Return(nil).Once()

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo), &testProvider{id: "main", state: singleTile()}, 60_000)
	svc.Start(context.Background())
	svc.SetReady()
	svc.MarkDirty()

	require.NoError(t, svc.Stop(context.Background()))
	require.NoError(t, svc.Stop(context.Background()), "second stop has nothing to save")
}
