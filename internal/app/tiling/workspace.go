package tiling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/layout"
	"github.com/bnema/tessera/internal/logging"
)

// Defaults for Config fields left zero.
const (
	DefaultResizeStep = 0.05
	DefaultNewTileURL = "about:blank"
)

// Config tunes a workspace.
type Config struct {
	Container          entity.Rect
	SleepMinWidth      int
	SleepMinHeight     int
	AdjacencyTolerance float64
	ResizeStep         float64
	DefaultSplitRatio  float64
	NewTileURL         string
}

// DefaultConfig returns a config for an 800×600 container.
func DefaultConfig() Config {
	return Config{
		Container:          entity.Rect{Width: 800, Height: 600},
		SleepMinWidth:      DefaultSleepMinWidth,
		SleepMinHeight:     DefaultSleepMinHeight,
		AdjacencyTolerance: layout.DefaultAdjacencyTolerance,
		ResizeStep:         DefaultResizeStep,
		DefaultSplitRatio:  entity.DefaultRatio,
		NewTileURL:         DefaultNewTileURL,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SleepMinWidth <= 0 {
		c.SleepMinWidth = d.SleepMinWidth
	}
	if c.SleepMinHeight <= 0 {
		c.SleepMinHeight = d.SleepMinHeight
	}
	if c.AdjacencyTolerance <= 0 {
		c.AdjacencyTolerance = d.AdjacencyTolerance
	}
	if c.ResizeStep <= 0 {
		c.ResizeStep = d.ResizeStep
	}
	if c.DefaultSplitRatio <= 0 {
		c.DefaultSplitRatio = d.DefaultSplitRatio
	}
	if c.NewTileURL == "" {
		c.NewTileURL = d.NewTileURL
	}
	return c
}

// Deps are the collaborators of a workspace. Overlay and GenerateID are
// optional.
type Deps struct {
	Provider   port.ContentViewProvider
	Overlay    port.OverlayPublisher
	GenerateID entity.IDGenerator
}

// TileInfo carries metadata reported by the content view. Nil fields are
// left untouched.
type TileInfo struct {
	URL          *string
	Title        *string
	AudioPlaying *bool
}

// Workspace owns the current layout tree and drives the lifecycle and focus
// controllers from it. Every structural operation replaces the tree, runs a
// layout pass and publishes the overlay state.
//
// mu guards the tree and is never held across a provider call. passMu orders
// layout passes; each pass reads the newest tree once it holds passMu.
type Workspace struct {
	id  entity.WorkspaceID
	cfg Config

	lifecycle  *LifecycleController
	focus      *FocusController
	overlay    port.OverlayPublisher
	generateID entity.IDGenerator

	mu        sync.Mutex
	root      *entity.LayoutNode
	container entity.Rect

	passMu sync.Mutex

	hooksMu sync.RWMutex
	hooks   []func()
}

// NewWorkspace creates an empty workspace. Call Open or Restore before use.
func NewWorkspace(id entity.WorkspaceID, cfg Config, deps Deps) *Workspace {
	cfg = cfg.withDefaults()
	generate := deps.GenerateID
	if generate == nil {
		generate = uuid.NewString
	}

	lc := NewLifecycleController(deps.Provider, LifecycleConfig{
		SleepMinWidth:  cfg.SleepMinWidth,
		SleepMinHeight: cfg.SleepMinHeight,
	})
	return &Workspace{
		id:         id,
		cfg:        cfg,
		lifecycle:  lc,
		focus:      NewFocusController(lc, cfg.AdjacencyTolerance),
		overlay:    deps.Overlay,
		generateID: generate,
		container:  cfg.Container,
	}
}

// ID returns the workspace id.
func (w *Workspace) ID() entity.WorkspaceID { return w.id }

// Lifecycle exposes the lifecycle controller.
func (w *Workspace) Lifecycle() *LifecycleController { return w.lifecycle }

// OnStateChange registers fn to be called after every operation that changes
// the persisted shape (tree, tiles metadata or focus).
func (w *Workspace) OnStateChange(fn func()) {
	w.hooksMu.Lock()
	defer w.hooksMu.Unlock()
	w.hooks = append(w.hooks, fn)
}

func (w *Workspace) notify() {
	w.hooksMu.RLock()
	hooks := append([]func(){}, w.hooks...)
	w.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn()
	}
}

func (w *Workspace) ctx(ctx context.Context) context.Context {
	return logging.WithComponent(logging.WithWorkspaceID(ctx, string(w.id)), "tiling")
}

// Open starts the workspace with a single live tile showing url (or the
// configured new-tile url).
func (w *Workspace) Open(ctx context.Context, url string) (entity.TileID, error) {
	ctx = w.ctx(ctx)
	if url == "" {
		url = w.cfg.NewTileURL
	}

	w.mu.Lock()
	if w.root != nil {
		w.mu.Unlock()
		return "", errors.New("workspace already open")
	}
	id := entity.TileID(w.generateID())
	if err := w.lifecycle.AddAsync(ctx, *entity.NewTile(id, url)); err != nil {
		w.mu.Unlock()
		return "", err
	}
	w.root = entity.NewLeaf(entity.NodeID(id), id)
	_ = w.focus.Set(ctx, w.root, id, SourceProgrammatic)
	w.mu.Unlock()

	w.publish(ctx, w.pass(ctx))
	w.notify()
	return id, nil
}

// Restore rebuilds the workspace from a persisted state. Every tile starts
// Sleeping; the layout pass then wakes the ones that are large enough and
// the focused one.
func (w *Workspace) Restore(ctx context.Context, state *entity.SessionState) error {
	ctx = w.ctx(ctx)
	if err := state.Validate(); err != nil {
		return err
	}
	if err := layout.Validate(state.Layout); err != nil {
		return err
	}

	w.mu.Lock()
	if w.root != nil {
		w.mu.Unlock()
		return errors.New("workspace already open")
	}
	for _, id := range layout.AllTileIDs(state.Layout) {
		rec, _ := state.Record(id)
		w.lifecycle.Restore(rec)
	}
	w.root = state.Layout
	focused := w.focus.Set(ctx, w.root, state.FocusedTileID, SourceRestore)
	w.mu.Unlock()
	overlay := w.pass(ctx)

	logging.FromContext(ctx).Info().
		Int("tiles", state.TileCount()).
		Str("focused", string(focused)).
		Msg("workspace restored")

	w.publish(ctx, overlay)
	return nil
}

// Split divides target and places a new tile showing url (or the configured
// new-tile url) in the second half. Focus moves to the new tile. A content
// view creation failure leaves the new tile in its error state and is not
// returned.
func (w *Workspace) Split(ctx context.Context, target entity.TileID, dir entity.SplitDirection, url string) (entity.TileID, error) {
	ctx = w.ctx(ctx)
	log := logging.FromContext(ctx)
	if !dir.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
	}
	if url == "" {
		url = w.cfg.NewTileURL
	}

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return "", ErrEmptyWorkspace
	}
	if target == "" {
		target = w.focus.Current(w.root)
	}
	next, newTile, ok := layout.Split(w.root, string(target), dir, w.cfg.DefaultSplitRatio, w.generateID)
	if !ok {
		found := layout.Contains(w.root, string(target))
		w.mu.Unlock()
		if found {
			return "", fmt.Errorf("%w: no free id to split %s", ErrDuplicateTile, target)
		}
		return "", fmt.Errorf("%w: %s", ErrTileNotFound, target)
	}

	log.Debug().
		Str("target", string(target)).
		Str("new_tile", string(newTile)).
		Str("direction", string(dir)).
		Msg("splitting tile")

	if err := w.lifecycle.AddAsync(ctx, *entity.NewTile(newTile, url)); err != nil {
		w.mu.Unlock()
		return "", err
	}
	w.root = next
	_ = w.focus.Focus(ctx, w.root, newTile, SourceSplit)
	w.mu.Unlock()

	w.publish(ctx, w.pass(ctx))
	w.notify()
	return newTile, nil
}

// Close removes a tile, promoting its sibling. Closing the only tile is
// refused with ErrLastTile.
func (w *Workspace) Close(ctx context.Context, id entity.TileID) error {
	ctx = w.ctx(ctx)

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return ErrEmptyWorkspace
	}
	target := layout.FindLeaf(w.root, string(id))
	if target == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTileNotFound, id)
	}
	if layout.CountTiles(w.root) == 1 {
		w.mu.Unlock()
		return ErrLastTile
	}
	removed := target.TileID

	var fallback entity.TileID
	if parent := layout.FindParentSplit(w.root, string(removed)); parent != nil {
		sibling := parent.Second
		if layout.WhichChild(parent, string(removed)) == layout.ChildSecond {
			sibling = parent.First
		}
		if ids := layout.AllTileIDs(sibling); len(ids) > 0 {
			fallback = ids[0]
		}
	}

	next, err := layout.Remove(w.root, string(removed))
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.root = next
	w.focus.Reassign(ctx, w.root, removed, fallback)
	w.mu.Unlock()

	if err := w.lifecycle.Remove(ctx, removed); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tile_id", string(removed)).Msg("failed to tear down tile")
	}
	state := w.pass(ctx)

	logging.FromContext(ctx).Debug().Str("tile_id", string(removed)).Msg("tile closed")
	w.publish(ctx, state)
	w.notify()
	return nil
}

// Focus moves focus to id, waking it if it sleeps.
func (w *Workspace) Focus(ctx context.Context, id entity.TileID) error {
	ctx = w.ctx(ctx)

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return ErrEmptyWorkspace
	}
	leaf := layout.FindLeaf(w.root, string(id))
	if leaf == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrTileNotFound, id)
	}
	if err := w.focus.Focus(ctx, w.root, leaf.TileID, SourceProgrammatic); err != nil {
		w.mu.Unlock()
		return err
	}
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
	w.notify()
	return nil
}

// FocusDirection moves focus to the neighbouring tile in direction and
// reports whether focus moved.
func (w *Workspace) FocusDirection(ctx context.Context, direction entity.Direction) bool {
	ctx = w.ctx(ctx)

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return false
	}
	if _, moved := w.focus.FocusDirection(ctx, w.root, w.container, direction); !moved {
		w.mu.Unlock()
		return false
	}
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
	w.notify()
	return true
}

// SwapDirection swaps the focused tile with its neighbour in direction. The
// same tile stays focused at its new position.
func (w *Workspace) SwapDirection(ctx context.Context, direction entity.Direction) bool {
	ctx = w.ctx(ctx)

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return false
	}
	next, swapped := w.focus.SwapDirection(ctx, w.root, w.container, direction)
	if !swapped {
		w.mu.Unlock()
		return false
	}
	w.root = next
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
	w.notify()
	return true
}

// ResizeInDirection moves the divider nearest to the focused tile. A
// non-positive delta uses the configured resize step. Reports whether the
// tree changed.
func (w *Workspace) ResizeInDirection(ctx context.Context, direction entity.Direction, delta float64) bool {
	ctx = w.ctx(ctx)
	if delta <= 0 {
		delta = w.cfg.ResizeStep
	}

	w.mu.Lock()
	if w.root == nil {
		w.mu.Unlock()
		return false
	}
	next := w.focus.ResizeInDirection(ctx, w.root, direction, delta)
	if next == w.root {
		w.mu.Unlock()
		return false
	}
	w.root = next
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
	w.notify()
	return true
}

// ResizeSplit sets the ratio of a split node directly, as a divider drag does.
func (w *Workspace) ResizeSplit(ctx context.Context, splitID entity.NodeID, ratio float64) error {
	ctx = logging.WithSplitID(w.ctx(ctx), string(splitID))

	w.mu.Lock()
	node := layout.FindNode(w.root, splitID)
	if node == nil || !node.IsSplit() {
		w.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrSplitNotFound, splitID)
	}
	next := layout.ResizeSplit(w.root, splitID, ratio)
	if next == w.root {
		w.mu.Unlock()
		return nil
	}
	w.root = next
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
	w.notify()
	return nil
}

// SetContainer changes the window area and runs a full layout pass.
func (w *Workspace) SetContainer(ctx context.Context, container entity.Rect) {
	ctx = w.ctx(ctx)

	w.mu.Lock()
	w.container = container
	if w.root == nil {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	state := w.pass(ctx)

	logging.FromContext(ctx).Debug().
		Int("width", container.Width).
		Int("height", container.Height).
		Msg("container resized")
	w.publish(ctx, state)
}

// ApplyConfig swaps in new thresholds and steps, then re-runs the layout.
// The container is left as is.
func (w *Workspace) ApplyConfig(ctx context.Context, cfg Config) {
	ctx = w.ctx(ctx)
	cfg = cfg.withDefaults()

	w.mu.Lock()
	cfg.Container = w.container
	w.cfg = cfg
	w.lifecycle.SetConfig(LifecycleConfig{SleepMinWidth: cfg.SleepMinWidth, SleepMinHeight: cfg.SleepMinHeight})
	w.focus.SetTolerance(cfg.AdjacencyTolerance)
	if w.root == nil {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	state := w.pass(ctx)

	w.publish(ctx, state)
}

// SetMuted toggles audio of a tile.
func (w *Workspace) SetMuted(ctx context.Context, id entity.TileID, muted bool) error {
	ctx = w.ctx(ctx)
	if err := w.lifecycle.SetMuted(ctx, id, muted); err != nil {
		return err
	}
	w.publish(ctx, w.Overlay())
	w.notify()
	return nil
}

// UpdateTileInfo records metadata reported by the content view.
func (w *Workspace) UpdateTileInfo(ctx context.Context, id entity.TileID, info TileInfo) error {
	ctx = w.ctx(ctx)
	ok := w.lifecycle.Update(id, func(t *entity.Tile) {
		if info.URL != nil {
			t.URL = *info.URL
		}
		if info.Title != nil {
			t.Title = *info.Title
		}
		if info.AudioPlaying != nil {
			t.AudioPlaying = *info.AudioPlaying
		}
	})
	if !ok {
		return fmt.Errorf("%w: %s", ErrTileNotFound, id)
	}
	if info.AudioPlaying != nil {
		w.publish(ctx, w.Overlay())
	}
	if info.URL != nil || info.Title != nil {
		w.notify()
	}
	return nil
}

// Root returns the current layout tree. The tree is immutable.
func (w *Workspace) Root() *entity.LayoutNode {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root
}

// Container returns the current window area.
func (w *Workspace) Container() entity.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.container
}

// FocusedTileID returns the focused tile, repaired against the tree.
func (w *Workspace) FocusedTileID() entity.TileID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focus.Current(w.root)
}

// Tile returns a copy of a tile.
func (w *Workspace) Tile(id entity.TileID) (entity.Tile, bool) {
	return w.lifecycle.Tile(id)
}

// Tiles returns copies of every tile in tree order.
func (w *Workspace) Tiles() []entity.Tile {
	root := w.Root()
	ids := layout.AllTileIDs(root)
	out := make([]entity.Tile, 0, len(ids))
	for _, id := range ids {
		if t, ok := w.lifecycle.Tile(id); ok {
			out = append(out, t)
		}
	}
	return out
}

// Bounds returns the rectangles of the current layout.
func (w *Workspace) Bounds() []entity.TileBounds {
	w.mu.Lock()
	defer w.mu.Unlock()
	return layout.CalculateBounds(w.root, w.container)
}

// Dividers returns the split dividers of the current layout.
func (w *Workspace) Dividers() []layout.Divider {
	w.mu.Lock()
	defer w.mu.Unlock()
	return layout.CalculateDividers(w.root, w.container)
}

// Snapshot produces the serialized shape of the workspace. Nil before Open
// or Restore.
func (w *Workspace) Snapshot() *entity.SessionState {
	w.mu.Lock()
	root := w.root
	focused := w.focus.Current(root)
	w.mu.Unlock()
	if root == nil {
		return nil
	}

	ids := layout.AllTileIDs(root)
	records := make([]entity.TileRecord, 0, len(ids))
	for _, id := range ids {
		t, ok := w.lifecycle.Tile(id)
		if !ok {
			t = entity.Tile{ID: id}
		}
		records = append(records, t.Record())
	}
	return &entity.SessionState{Layout: root, Tiles: records, FocusedTileID: focused}
}

// Overlay returns the indicator state of the current layout.
func (w *Workspace) Overlay() entity.OverlayState {
	w.mu.Lock()
	bounds := layout.CalculateBounds(w.root, w.container)
	focused := w.focus.Current(w.root)
	w.mu.Unlock()
	return w.overlayState(bounds, focused)
}

// WaitIdle blocks until no lifecycle transition is in flight.
func (w *Workspace) WaitIdle() {
	w.lifecycle.Wait()
}

// Shutdown tears down every content view.
func (w *Workspace) Shutdown(ctx context.Context) error {
	ctx = w.ctx(ctx)
	logging.FromContext(ctx).Debug().Msg("shutting down workspace")
	return w.lifecycle.Shutdown(ctx)
}

// pass recomputes bounds from the newest tree and hands them to the
// lifecycle controller. Must be called without w.mu held.
func (w *Workspace) pass(ctx context.Context) entity.OverlayState {
	w.passMu.Lock()
	defer w.passMu.Unlock()

	w.mu.Lock()
	bounds := layout.CalculateBounds(w.root, w.container)
	focused := w.focus.Current(w.root)
	w.mu.Unlock()

	if err := w.lifecycle.Apply(ctx, bounds, focused); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("layout pass completed with errors")
	}
	return w.overlayState(bounds, focused)
}

func (w *Workspace) overlayState(bounds []entity.TileBounds, focused entity.TileID) entity.OverlayState {
	state := entity.OverlayState{
		Tiles:         make([]entity.OverlayTile, 0, len(bounds)),
		FocusedTileID: focused,
	}
	for _, b := range bounds {
		t, _ := w.lifecycle.Tile(b.TileID)
		state.Tiles = append(state.Tiles, entity.OverlayTile{
			TileID:         b.TileID,
			WindowBounds:   b.Rect,
			IsFocused:      b.TileID == focused,
			IsAudioPlaying: t.AudioPlaying,
			IsMuted:        t.Muted,
		})
	}
	return state
}

func (w *Workspace) publish(ctx context.Context, state entity.OverlayState) {
	if w.overlay == nil {
		return
	}
	w.overlay.Publish(ctx, state)
}
