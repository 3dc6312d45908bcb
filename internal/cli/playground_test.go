package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/idgen"
	"github.com/bnema/tessera/internal/infrastructure/persistence/sqlite"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root+"/config")
	t.Setenv("XDG_DATA_HOME", root+"/data")
	t.Setenv("XDG_STATE_HOME", root+"/state")

	app, err := NewApp(Options{
		ConfigDir:    root + "/config",
		DatabasePath: sqlite.MemoryPath,
		Interactive:  true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestTilingConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Lifecycle.SleepMinWidth = 320
	cfg.Focus.ResizeStep = 0.1

	got := TilingConfig(cfg, entity.Rect{Width: 640, Height: 480})
	assert.Equal(t, 320, got.SleepMinWidth)
	assert.Equal(t, config.DefaultSleepMinHeight, got.SleepMinHeight)
	assert.InDelta(t, 0.1, got.ResizeStep, 1e-9)
	assert.Equal(t, entity.Rect{Width: 640, Height: 480}, got.Container)
	assert.Equal(t, "about:blank", got.NewTileURL)
}

func TestWorkspaceID(t *testing.T) {
	app := newTestApp(t)
	assert.Equal(t, entity.WorkspaceID(config.DefaultWorkspaceID), app.WorkspaceID(""))
	assert.Equal(t, entity.WorkspaceID("other"), app.WorkspaceID("other"))
}

func TestPlayground_PersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	pg, err := app.OpenPlayground(ctx, PlaygroundOptions{
		URLs:       []string{"https://one", "https://two", "https://three"},
		GenerateID: idgen.Sequential("t"),
	})
	require.NoError(t, err)
	assert.False(t, pg.Restored)
	pg.Workspace.WaitIdle()
	require.Len(t, pg.Workspace.Tiles(), 3)

	want := pg.Workspace.Snapshot()
	require.NoError(t, pg.Close(ctx))
	assert.Equal(t, 0, pg.Provider.LiveCount())

	again, err := app.OpenPlayground(ctx, PlaygroundOptions{})
	require.NoError(t, err)
	defer func() { _ = again.Close(ctx) }()

	assert.True(t, again.Restored)
	got := again.Workspace.Snapshot()
	assert.True(t, want.Layout.Equal(got.Layout))
	assert.Equal(t, want.Tiles, got.Tiles)
	assert.Equal(t, want.FocusedTileID, got.FocusedTileID)
}

func TestPlayground_FreshIgnoresSavedLayout(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	pg, err := app.OpenPlayground(ctx, PlaygroundOptions{URLs: []string{"https://a", "https://b"}})
	require.NoError(t, err)
	require.NoError(t, pg.Close(ctx))

	fresh, err := app.OpenPlayground(ctx, PlaygroundOptions{Fresh: true})
	require.NoError(t, err)
	defer func() { _ = fresh.Close(ctx) }()

	assert.False(t, fresh.Restored)
	tiles := fresh.Workspace.Tiles()
	require.Len(t, tiles, 1)
	assert.Equal(t, "about:blank", tiles[0].URL)
}

func TestPlayground_ApplyConfig(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t)

	pg, err := app.OpenPlayground(ctx, PlaygroundOptions{Fresh: true, URLs: []string{"https://a", "https://b"}})
	require.NoError(t, err)
	defer func() { _ = pg.Close(ctx) }()
	pg.Workspace.WaitIdle()

	cfg := config.DefaultConfig()
	cfg.Lifecycle.SleepMinWidth = 10000
	pg.ApplyConfig(ctx, cfg)
	pg.Workspace.WaitIdle()

	assert.Equal(t, 1, pg.Provider.LiveCount(), "only the focused tile stays live")
}
