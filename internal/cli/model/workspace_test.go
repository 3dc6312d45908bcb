package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/app/tiling"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/infrastructure/config"
	"github.com/bnema/tessera/internal/infrastructure/contentview"
	"github.com/bnema/tessera/internal/infrastructure/idgen"
)

func newTestModel(t *testing.T) (WorkspaceModel, *tiling.Workspace, *contentview.Provider) {
	t.Helper()
	provider := contentview.NewProvider()
	ws := tiling.NewWorkspace("playground", tiling.DefaultConfig(), tiling.Deps{
		Provider:   provider,
		GenerateID: idgen.Sequential("t"),
	})
	_, err := ws.Open(context.Background(), "https://first.example")
	require.NoError(t, err)

	m := NewWorkspaceModel(context.Background(), styles.NewTheme(config.DefaultConfig()), WorkspaceModelConfig{
		Workspace:  ws,
		NewTileURL: "about:blank",
	})
	return m, ws, provider
}

func press(t *testing.T, m WorkspaceModel, keys ...tea.KeyMsg) WorkspaceModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(WorkspaceModel)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func alt(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true}
}

func TestContainerFor(t *testing.T) {
	assert.Equal(t, entity.Rect{Width: 800, Height: 608}, ContainerFor(100, 40))
	assert.Equal(t, entity.Rect{}, ContainerFor(0, 1))
}

func TestWorkspaceModel_WindowSizeSetsContainer(t *testing.T) {
	m, ws, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 42})
	m = next.(WorkspaceModel)
	ws.WaitIdle()

	assert.Equal(t, entity.Rect{Width: 960, Height: 640}, ws.Container())
	assert.Equal(t, 120, m.width)
}

func TestWorkspaceModel_SplitFocusAndClose(t *testing.T) {
	m, ws, provider := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(WorkspaceModel)

	m = press(t, m, runes("v"))
	ws.WaitIdle()
	require.Len(t, ws.Tiles(), 2)
	second := ws.FocusedTileID()
	assert.Equal(t, entity.TileID("t3"), second)
	assert.Equal(t, 2, provider.LiveCount())

	m = press(t, m, runes("h"))
	assert.Equal(t, entity.TileID("t1"), ws.FocusedTileID())

	m = press(t, m, runes("h"))
	assert.Contains(t, m.status, "no tile left")

	m = press(t, m, alt("l"))
	assert.InDelta(t, 0.55, ws.Root().Ratio, 1e-9)

	m = press(t, m, runes("L"))
	assert.Equal(t, entity.TileID("t1"), ws.Tiles()[1].ID, "swap moves the focused tile right")

	m = press(t, m, runes("x"))
	ws.WaitIdle()
	assert.Len(t, ws.Tiles(), 1)
	assert.Equal(t, second, ws.FocusedTileID())

	m = press(t, m, runes("x"))
	assert.Contains(t, m.status, tiling.ErrLastTile.Error())
	assert.False(t, m.failed)
}

func TestWorkspaceModel_CycleMuteAudio(t *testing.T) {
	m, ws, _ := newTestModel(t)
	m = press(t, m, runes("s"))
	ws.WaitIdle()

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, entity.TileID("t1"), ws.FocusedTileID())

	m = press(t, m, runes("m"), runes("a"))
	tile, ok := ws.Tile("t1")
	require.True(t, ok)
	assert.True(t, tile.Muted)
	assert.True(t, tile.AudioPlaying)

	view := m.View()
	assert.Contains(t, view, "muted")
	assert.Contains(t, view, "2/2 live")
}

func TestWorkspaceModel_Save(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = press(t, m, runes("w"))
	assert.Equal(t, "persistence disabled", m.status)

	saved := 0
	m.saveNow = func(context.Context) error {
		saved++
		return nil
	}
	m = press(t, m, runes("w"))
	assert.Equal(t, 1, saved)
	assert.Equal(t, "layout saved", m.status)
}

func TestWorkspaceModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestWorkspaceModel_DragDividerResizesSplit(t *testing.T) {
	m, ws, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(WorkspaceModel)
	m = press(t, m, runes("v"))
	ws.WaitIdle()
	split := ws.Root()
	require.True(t, split.IsSplit())

	// divider sits at x=400px, cell 50
	for _, msg := range []tea.MouseMsg{
		mouse(50, 5, tea.MouseActionPress),
		mouse(40, 5, tea.MouseActionMotion),
		mouse(25, 5, tea.MouseActionRelease),
	} {
		next, _ = m.Update(msg)
		m = next.(WorkspaceModel)
	}
	ws.WaitIdle()

	assert.InDelta(t, 0.25, ws.Root().Ratio, 1e-9)
	assert.Empty(t, m.dragging)

	// motion after release and drags starting inside a tile do nothing
	for _, msg := range []tea.MouseMsg{
		mouse(60, 5, tea.MouseActionMotion),
		mouse(10, 5, tea.MouseActionPress),
		mouse(70, 5, tea.MouseActionMotion),
		mouse(70, 5, tea.MouseActionRelease),
	} {
		next, _ = m.Update(msg)
		m = next.(WorkspaceModel)
	}
	ws.WaitIdle()
	assert.InDelta(t, 0.25, ws.Root().Ratio, 1e-9)
}
