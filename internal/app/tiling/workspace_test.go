package tiling

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/tessera/internal/application/port/mocks"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/layout"
)

func newTestWorkspace(t *testing.T, provider *fakeProvider) *Workspace {
	t.Helper()
	cfg := DefaultConfig()
	return NewWorkspace("ws", cfg, Deps{Provider: provider, GenerateID: counterIDs("n")})
}

func openSplit(t *testing.T, ws *Workspace) (first, second entity.TileID) {
	t.Helper()
	ctx := context.Background()
	first, err := ws.Open(ctx, "https://one")
	require.NoError(t, err)
	second, err = ws.Split(ctx, first, entity.SplitVertical, "https://two")
	require.NoError(t, err)
	ws.WaitIdle()
	return first, second
}

func TestWorkspace_OpenAndSplit(t *testing.T) {
	provider := newFakeProvider()
	ws := newTestWorkspace(t, provider)
	first, second := openSplit(t, ws)

	assert.Equal(t, entity.TileID("n1"), first)
	assert.Equal(t, entity.TileID("n3"), second)
	assert.Equal(t, second, ws.FocusedTileID(), "split focuses the new tile")

	assert.Equal(t, []entity.TileBounds{
		{TileID: "n1", Rect: entity.Rect{X: 0, Y: 0, Width: 400, Height: 600}},
		{TileID: "n3", Rect: entity.Rect{X: 400, Y: 0, Width: 400, Height: 600}},
	}, ws.Bounds())
	assert.Equal(t, 2, provider.liveCount())

	for _, tile := range ws.Tiles() {
		assert.Equal(t, entity.TileLive, tile.State, tile.ID)
	}
}

func TestWorkspace_SplitErrors(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t, newFakeProvider())

	_, err := ws.Split(ctx, "n1", entity.SplitVertical, "")
	assert.ErrorIs(t, err, ErrEmptyWorkspace)

	_, err = ws.Open(ctx, "")
	require.NoError(t, err)

	_, err = ws.Split(ctx, "missing", entity.SplitVertical, "")
	assert.ErrorIs(t, err, ErrTileNotFound)

	_, err = ws.Split(ctx, "n1", "diagonal", "")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestWorkspace_SplitWithFailingProvider(t *testing.T) {
	ctx := context.Background()
	provider := newFakeProvider()
	provider.failURLs["https://broken"] = true
	ws := newTestWorkspace(t, provider)

	first, err := ws.Open(ctx, "https://one")
	require.NoError(t, err)
	broken, err := ws.Split(ctx, first, entity.SplitHorizontal, "https://broken")
	require.NoError(t, err)
	ws.WaitIdle()

	tile, ok := ws.Tile(broken)
	require.True(t, ok)
	assert.ErrorIs(t, tile.Err, ErrContentViewCreation)

	healthy, _ := ws.Tile(first)
	assert.Equal(t, entity.TileLive, healthy.State)
	assert.NoError(t, healthy.Err)
	assert.Equal(t, 2, len(ws.Bounds()), "tree is intact")
}

func TestWorkspace_CloseReassignsFocus(t *testing.T) {
	ctx := context.Background()
	provider := newFakeProvider()
	ws := newTestWorkspace(t, provider)
	first, second := openSplit(t, ws)

	require.NoError(t, ws.Close(ctx, second))
	ws.WaitIdle()

	assert.Equal(t, first, ws.FocusedTileID())
	assert.True(t, ws.Root().IsLeaf())
	assert.Equal(t, 1, provider.liveCount())

	assert.ErrorIs(t, ws.Close(ctx, first), ErrLastTile)
	assert.ErrorIs(t, ws.Close(ctx, "missing"), ErrTileNotFound)
}

func TestWorkspace_NarrowContainerSleepsUnfocused(t *testing.T) {
	ctx := context.Background()
	provider := newFakeProvider()
	ws := newTestWorkspace(t, provider)
	first, second := openSplit(t, ws)

	ws.SetContainer(ctx, entity.Rect{Width: 300, Height: 600})
	ws.WaitIdle()

	a, _ := ws.Tile(first)
	b, _ := ws.Tile(second)
	assert.Equal(t, entity.TileSleeping, a.State)
	assert.Equal(t, entity.TileLive, b.State, "focused tile never sleeps")
	assert.Equal(t, 1, provider.liveCount())

	require.NoError(t, ws.Focus(ctx, first))
	ws.WaitIdle()

	a, _ = ws.Tile(first)
	b, _ = ws.Tile(second)
	assert.Equal(t, entity.TileLive, a.State, "focus wakes regardless of size")
	assert.Equal(t, entity.TileSleeping, b.State)
	assert.Equal(t, 1, provider.liveCount())
}

func TestWorkspace_DirectionalOperations(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t, newFakeProvider())
	first, second := openSplit(t, ws)

	assert.True(t, ws.FocusDirection(ctx, entity.DirLeft))
	assert.Equal(t, first, ws.FocusedTileID())
	assert.False(t, ws.FocusDirection(ctx, entity.DirLeft))

	assert.True(t, ws.SwapDirection(ctx, entity.DirRight))
	assert.Equal(t, first, ws.FocusedTileID(), "focus follows the tile")
	assert.Equal(t, []entity.TileBounds{
		{TileID: second, Rect: entity.Rect{X: 0, Y: 0, Width: 400, Height: 600}},
		{TileID: first, Rect: entity.Rect{X: 400, Y: 0, Width: 400, Height: 600}},
	}, ws.Bounds())

	assert.True(t, ws.ResizeInDirection(ctx, entity.DirLeft, 0))
	assert.InDelta(t, 0.45, ws.Root().Ratio, 1e-9, "left grows the right-hand tile")
	assert.False(t, ws.ResizeInDirection(ctx, entity.DirUp, 0), "no horizontal split")
	ws.WaitIdle()
}

func TestWorkspace_ResizeSplit(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t, newFakeProvider())
	openSplit(t, ws)

	splitID := ws.Root().ID
	require.NoError(t, ws.ResizeSplit(ctx, splitID, 0.95))
	assert.Equal(t, entity.MaxRatio, ws.Root().Ratio)

	assert.ErrorIs(t, ws.ResizeSplit(ctx, "nope", 0.3), ErrSplitNotFound)
	ws.WaitIdle()
}

func TestWorkspace_SnapshotRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t, newFakeProvider())
	first, second := openSplit(t, ws)

	title := "Second"
	require.NoError(t, ws.UpdateTileInfo(ctx, second, TileInfo{Title: &title}))
	require.NoError(t, ws.SetMuted(ctx, first, true))

	state := ws.Snapshot()
	require.NotNil(t, state)
	assert.Equal(t, []entity.TileRecord{
		{ID: first, URL: "https://one", IsMuted: true},
		{ID: second, URL: "https://two", Title: "Second"},
	}, state.Tiles)
	assert.Equal(t, second, state.FocusedTileID)

	encoded, err := json.Marshal(state)
	require.NoError(t, err)

	var decoded entity.SessionState
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	restoredProvider := newFakeProvider()
	restored := NewWorkspace("ws", DefaultConfig(), Deps{Provider: restoredProvider})
	require.NoError(t, restored.Restore(ctx, &decoded))
	restored.WaitIdle()

	again, err := json.Marshal(restored.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, string(encoded), string(again))
	assert.Equal(t, string(encoded), string(again))

	assert.Equal(t, 2, restoredProvider.liveCount(), "both tiles are large enough to wake")
	tile, _ := restored.Tile(first)
	assert.True(t, tile.Muted)
}

func TestWorkspace_RestoreRejectsInvalidState(t *testing.T) {
	ws := newTestWorkspace(t, newFakeProvider())
	err := ws.Restore(context.Background(), &entity.SessionState{
		Layout: entity.NewLeaf("x", "x"),
	})
	assert.ErrorIs(t, err, entity.ErrInvalidSessionState)
	assert.Nil(t, ws.Snapshot())
}

func TestWorkspace_OnStateChange(t *testing.T) {
	ctx := context.Background()
	ws := newTestWorkspace(t, newFakeProvider())

	changes := 0
	ws.OnStateChange(func() { changes++ })

	first, second := openSplit(t, ws)
	assert.Equal(t, 2, changes)

	require.NoError(t, ws.Close(ctx, second))
	assert.Equal(t, 3, changes)

	ws.SetContainer(ctx, entity.Rect{Width: 1024, Height: 768})
	assert.Equal(t, 3, changes, "window geometry is not persisted state")

	require.NoError(t, ws.Focus(ctx, first))
	assert.Equal(t, 4, changes)
	ws.WaitIdle()
}

func TestWorkspace_PublishesOverlayAfterPass(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockOverlayPublisher(ctrl)

	var last entity.OverlayState
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, state entity.OverlayState) { last = state }).
		Times(2)

	ws := NewWorkspace("ws", DefaultConfig(), Deps{
		Provider:   newFakeProvider(),
		Overlay:    publisher,
		GenerateID: counterIDs("n"),
	})
	first, err := ws.Open(ctx, "https://one")
	require.NoError(t, err)
	second, err := ws.Split(ctx, first, entity.SplitHorizontal, "https://two")
	require.NoError(t, err)
	ws.WaitIdle()

	assert.Equal(t, second, last.FocusedTileID)
	require.Len(t, last.Tiles, 2)
	assert.Equal(t, entity.OverlayTile{
		TileID:       first,
		WindowBounds: entity.Rect{X: 0, Y: 0, Width: 800, Height: 300},
	}, last.Tiles[0])
	assert.True(t, last.Tiles[1].IsFocused)
	assert.Equal(t, entity.Rect{X: 0, Y: 300, Width: 800, Height: 300}, last.Tiles[1].WindowBounds)
}

func TestWorkspace_Shutdown(t *testing.T) {
	provider := newFakeProvider()
	ws := newTestWorkspace(t, provider)
	openSplit(t, ws)

	require.NoError(t, ws.Shutdown(context.Background()))
	assert.Equal(t, 0, provider.liveCount())
}

func TestWorkspace_SplitAfterRestoreSkipsTakenIDs(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace("ws", DefaultConfig(), Deps{Provider: newFakeProvider(), GenerateID: counterIDs("t")})

	require.NoError(t, ws.Restore(ctx, &entity.SessionState{
		Layout: entity.NewSplit("t3", entity.SplitVertical, 0.5,
			entity.NewLeaf("t1", "t1"), entity.NewLeaf("t2", "t2")),
		Tiles: []entity.TileRecord{
			{ID: "t1", URL: "https://one"},
			{ID: "t2", URL: "https://two"},
		},
		FocusedTileID: "t1",
	}))

	created, err := ws.Split(ctx, "t1", entity.SplitHorizontal, "https://three")
	require.NoError(t, err)
	ws.WaitIdle()

	assert.Equal(t, entity.TileID("t5"), created)
	assert.Equal(t, []entity.TileID{"t1", "t5", "t2"}, layout.AllTileIDs(ws.Root()))
	require.NoError(t, layout.Validate(ws.Root()))
	assert.Len(t, ws.Tiles(), 3)

	again := NewWorkspace("ws", DefaultConfig(), Deps{Provider: newFakeProvider()})
	require.NoError(t, again.Restore(ctx, ws.Snapshot()))
	again.WaitIdle()
	assert.Len(t, again.Tiles(), 3)
}

func TestWorkspace_SplitWithExhaustedIDsLeavesTreeUntouched(t *testing.T) {
	ctx := context.Background()
	ws := NewWorkspace("ws", DefaultConfig(), Deps{
		Provider:   newFakeProvider(),
		GenerateID: func() string { return "same" },
	})

	first, err := ws.Open(ctx, "https://one")
	require.NoError(t, err)
	before := ws.Root()

	_, err = ws.Split(ctx, first, entity.SplitVertical, "https://two")
	assert.ErrorIs(t, err, ErrDuplicateTile)
	assert.Same(t, before, ws.Root())
	assert.Len(t, ws.Tiles(), 1)
	ws.WaitIdle()
}

func TestWorkspace_SlowProviderDoesNotBlockReaders(t *testing.T) {
	ctx := context.Background()
	provider := &gatedProvider{fakeProvider: newFakeProvider(), gate: make(chan struct{})}
	ws := NewWorkspace("ws", DefaultConfig(), Deps{Provider: provider, GenerateID: counterIDs("n")})

	first, err := ws.Open(ctx, "https://one")
	require.NoError(t, err)
	second, err := ws.Split(ctx, first, entity.SplitVertical, "https://two")
	require.NoError(t, err)

	assert.Equal(t, second, ws.FocusedTileID())
	assert.Len(t, ws.Bounds(), 2)
	assert.Len(t, ws.Overlay().Tiles, 2)
	assert.Equal(t, PhaseWakeInProgress, ws.Lifecycle().Phase(first))
	assert.Equal(t, PhaseWakeInProgress, ws.Lifecycle().Phase(second))
	assert.Zero(t, provider.liveCount())

	close(provider.gate)
	ws.WaitIdle()

	assert.Equal(t, 2, provider.liveCount())
	for _, tile := range ws.Tiles() {
		assert.Equal(t, entity.TileLive, tile.State, tile.ID)
	}
	rect, ok := provider.boundsOf("https://one")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, Width: 400, Height: 600}, rect)
	rect, ok = provider.boundsOf("https://two")
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 400, Y: 0, Width: 400, Height: 600}, rect)
}
