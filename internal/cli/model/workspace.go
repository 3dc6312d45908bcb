// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tessera/internal/app/tiling"
	"github.com/bnema/tessera/internal/cli/styles"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/layout"
	"github.com/bnema/tessera/internal/logging"
)

// A terminal cell stands for this many pixels, so the engine's pixel
// thresholds keep their meaning in the playground.
const (
	CellWidth  = 8
	CellHeight = 16

	footerHeight = 2
)

// WorkspaceModelConfig holds the collaborators of the playground.
type WorkspaceModelConfig struct {
	Workspace  *tiling.Workspace
	NewTileURL string
	// SaveNow persists the layout immediately. Optional.
	SaveNow func(ctx context.Context) error
}

// WorkspaceModel is the interactive tiling playground.
type WorkspaceModel struct {
	help     help.Model
	keys     workspaceKeyMap
	showHelp bool

	width  int
	height int
	status string
	failed bool

	// split whose divider follows the mouse, empty when not dragging
	dragging entity.NodeID

	ctx        context.Context
	ws         *tiling.Workspace
	newTileURL string
	saveNow    func(ctx context.Context) error
	theme      *styles.Theme
}

// NewWorkspaceModel creates the playground model.
func NewWorkspaceModel(ctx context.Context, theme *styles.Theme, cfg WorkspaceModelConfig) WorkspaceModel {
	return WorkspaceModel{
		help:       help.New(),
		keys:       defaultWorkspaceKeyMap(),
		width:      80,
		height:     24,
		ctx:        ctx,
		ws:         cfg.Workspace,
		newTileURL: cfg.NewTileURL,
		saveNow:    cfg.SaveNow,
		theme:      theme,
	}
}

// ContainerFor converts a terminal size into the workspace area in pixels.
func ContainerFor(width, height int) entity.Rect {
	return entity.Rect{
		Width:  max(width, 0) * CellWidth,
		Height: max(height-footerHeight, 0) * CellHeight,
	}
}

// Init implements tea.Model.
func (m WorkspaceModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ws.SetContainer(m.ctx, ContainerFor(msg.Width, msg.Height))
		return m, nil

	case OverlayMsg, TransitionMsg:
		// State is read from the workspace on render.
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m WorkspaceModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X*CellWidth, msg.Y*CellHeight
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if d, ok := layout.DividerAt(m.ws.Dividers(), x, y, CellHeight); ok {
			m.dragging = d.SplitID
		}
	case tea.MouseActionMotion:
		if m.dragging != "" {
			m.dragTo(x, y)
		}
	case tea.MouseActionRelease:
		if m.dragging != "" {
			m.dragTo(x, y)
			m.dragging = ""
		}
	}
	return m, nil
}

// dragTo moves the dragged divider to (x, y). The split is looked up again
// each time since the container or an outer split may have changed.
func (m *WorkspaceModel) dragTo(x, y int) {
	for _, d := range m.ws.Dividers() {
		if d.SplitID != m.dragging {
			continue
		}
		if err := m.ws.ResizeSplit(m.ctx, d.SplitID, d.RatioAt(x, y)); err != nil {
			m.setStatus(err.Error(), true)
		}
		return
	}
	m.dragging = ""
}

func (m WorkspaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	if dir, ok := m.direction(msg, m.keys.FocusLeft, m.keys.FocusDown, m.keys.FocusUp, m.keys.FocusRight); ok {
		if !m.ws.FocusDirection(m.ctx, dir) {
			m.setStatus(fmt.Sprintf("no tile %s", dir), false)
		} else {
			m.setStatus("", false)
		}
		return m, nil
	}
	if dir, ok := m.direction(msg, m.keys.SwapLeft, m.keys.SwapDown, m.keys.SwapUp, m.keys.SwapRight); ok {
		if !m.ws.SwapDirection(m.ctx, dir) {
			m.setStatus(fmt.Sprintf("nothing to swap %s", dir), false)
		}
		return m, nil
	}
	if dir, ok := m.direction(msg, m.keys.GrowLeft, m.keys.GrowDown, m.keys.GrowUp, m.keys.GrowRight); ok {
		if !m.ws.ResizeInDirection(m.ctx, dir, 0) {
			m.setStatus(fmt.Sprintf("no %s split to resize", dir.Axis()), false)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SplitRight):
		m.split(entity.SplitVertical)
	case key.Matches(msg, m.keys.SplitDown):
		m.split(entity.SplitHorizontal)
	case key.Matches(msg, m.keys.Close):
		m.closeFocused()
	case key.Matches(msg, m.keys.Cycle):
		m.cycleFocus()
	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()
	case key.Matches(msg, m.keys.Audio):
		m.toggleAudio()
	case key.Matches(msg, m.keys.Save):
		m.save()
	}
	return m, nil
}

func (m WorkspaceModel) direction(msg tea.KeyMsg, left, down, up, right key.Binding) (entity.Direction, bool) {
	switch {
	case key.Matches(msg, left):
		return entity.DirLeft, true
	case key.Matches(msg, down):
		return entity.DirDown, true
	case key.Matches(msg, up):
		return entity.DirUp, true
	case key.Matches(msg, right):
		return entity.DirRight, true
	}
	return "", false
}

func (m *WorkspaceModel) setStatus(status string, failed bool) {
	m.status = status
	m.failed = failed
}

func (m *WorkspaceModel) split(dir entity.SplitDirection) {
	target := m.ws.FocusedTileID()
	id, err := m.ws.Split(m.ctx, target, dir, m.newTileURL)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(fmt.Sprintf("opened %s", id), false)
}

func (m *WorkspaceModel) closeFocused() {
	id := m.ws.FocusedTileID()
	if err := m.ws.Close(m.ctx, id); err != nil {
		m.setStatus(err.Error(), !errors.Is(err, tiling.ErrLastTile))
		return
	}
	m.setStatus(fmt.Sprintf("closed %s", id), false)
}

func (m *WorkspaceModel) cycleFocus() {
	tiles := m.ws.Tiles()
	if len(tiles) == 0 {
		return
	}
	current := m.ws.FocusedTileID()
	next := tiles[0].ID
	for i, t := range tiles {
		if t.ID == current {
			next = tiles[(i+1)%len(tiles)].ID
			break
		}
	}
	if err := m.ws.Focus(m.ctx, next); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *WorkspaceModel) toggleMute() {
	tile, ok := m.ws.Tile(m.ws.FocusedTileID())
	if !ok {
		return
	}
	if err := m.ws.SetMuted(m.ctx, tile.ID, !tile.Muted); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *WorkspaceModel) toggleAudio() {
	tile, ok := m.ws.Tile(m.ws.FocusedTileID())
	if !ok {
		return
	}
	playing := !tile.AudioPlaying
	if err := m.ws.UpdateTileInfo(m.ctx, tile.ID, tiling.TileInfo{AudioPlaying: &playing}); err != nil {
		m.setStatus(err.Error(), true)
	}
}

func (m *WorkspaceModel) save() {
	if m.saveNow == nil {
		m.setStatus("persistence disabled", false)
		return
	}
	if err := m.saveNow(m.ctx); err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("manual layout save failed")
		m.setStatus(fmt.Sprintf("save failed: %v", err), true)
		return
	}
	m.setStatus("layout saved", false)
}

// View implements tea.Model.
func (m WorkspaceModel) View() string {
	helpView := m.help.View(m.keys)
	areaHeight := max(m.height-1-lipgloss.Height(helpView), 0)
	focused := m.ws.FocusedTileID()

	grid := m.theme.RenderLayout(m.ws.Root(), m.width, areaHeight, func(id entity.TileID) styles.TileView {
		tile, _ := m.ws.Tile(id)
		return styles.TileView{Tile: tile, Focused: id == focused}
	})

	return lipgloss.JoinVertical(lipgloss.Left, grid, m.statusLine(), helpView)
}

func (m WorkspaceModel) statusLine() string {
	tiles := m.ws.Tiles()
	live := 0
	for _, t := range tiles {
		if t.State == entity.TileLive {
			live++
		}
	}
	container := m.ws.Container()

	parts := []string{
		m.theme.Badge.Render(string(m.ws.ID())),
		m.theme.Subtle.Render(fmt.Sprintf("%d/%d live", live, len(tiles))),
		m.theme.Subtle.Render(fmt.Sprintf("%dx%d px", container.Width, container.Height)),
	}
	if m.status != "" {
		style := m.theme.Normal
		if m.failed {
			style = m.theme.ErrorStyle
		}
		parts = append(parts, style.Render(m.status))
	}
	return m.theme.StatusBar.Render(strings.Join(parts, "  "))
}
