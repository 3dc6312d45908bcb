package tiling

import (
	"context"
	"sync"

	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/domain/layout"
	"github.com/bnema/tessera/internal/logging"
)

// FocusSource identifies where a focus request originated.
type FocusSource string

const (
	SourceKeyboard     FocusSource = "keyboard"     // directional navigation
	SourceProgrammatic FocusSource = "programmatic" // API call
	SourceSplit        FocusSource = "split"        // new tile from a split
	SourceClose        FocusSource = "close"        // reassignment after a close
	SourceRestore      FocusSource = "restore"      // session restore
)

const focusHistorySize = 32

// Waker wakes a sleeping tile. Implemented by LifecycleController.
type Waker interface {
	RequestWake(ctx context.Context, id entity.TileID) bool
}

// FocusController tracks which tile holds input focus.
//
// Focus is stored as a plain tile id, never as a reference into the tree, and
// is re-checked against the current tree on every read.
type FocusController struct {
	mu        sync.Mutex
	focused   entity.TileID
	history   *RingBuffer[entity.TileID]
	waker     Waker
	tolerance float64
}

// NewFocusController creates a controller that wakes focused tiles through
// waker. A non-positive tolerance selects layout.DefaultAdjacencyTolerance.
func NewFocusController(waker Waker, tolerance float64) *FocusController {
	if tolerance <= 0 {
		tolerance = layout.DefaultAdjacencyTolerance
	}
	return &FocusController{
		history:   NewRingBuffer[entity.TileID](focusHistorySize),
		waker:     waker,
		tolerance: tolerance,
	}
}

// SetTolerance changes the adjacency tolerance used by directional moves.
func (f *FocusController) SetTolerance(tolerance float64) {
	if tolerance <= 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tolerance = tolerance
}

// Current returns the focused tile, repairing it to the first tile of root
// when the stored id no longer exists.
func (f *FocusController) Current(root *entity.LayoutNode) entity.TileID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.currentLocked(root)
}

func (f *FocusController) currentLocked(root *entity.LayoutNode) entity.TileID {
	if f.focused != "" && layout.Contains(root, string(f.focused)) {
		return f.focused
	}
	f.focused = ""
	if ids := layout.AllTileIDs(root); len(ids) > 0 {
		f.focused = ids[0]
	}
	return f.focused
}

// Focus moves focus to id and asks the lifecycle to wake it. The wake runs
// in the background; focus changes immediately.
func (f *FocusController) Focus(ctx context.Context, root *entity.LayoutNode, id entity.TileID, source FocusSource) error {
	if !layout.Contains(root, string(id)) {
		return ErrTileNotFound
	}

	f.mu.Lock()
	prev := f.focused
	if prev != id {
		if prev != "" {
			f.history.Add(prev)
		}
		f.focused = id
	}
	f.mu.Unlock()

	if prev != id {
		logging.FromContext(ctx).Debug().
			Str("from", string(prev)).
			Str("to", string(id)).
			Str("source", string(source)).
			Msg("focus changed")
	}

	if f.waker != nil {
		f.waker.RequestWake(ctx, id)
	}
	return nil
}

// FocusDirection moves focus to the nearest tile in direction. Returns false
// when there is no such tile.
func (f *FocusController) FocusDirection(
	ctx context.Context,
	root *entity.LayoutNode,
	container entity.Rect,
	direction entity.Direction,
) (entity.TileID, bool) {
	target, ok := f.adjacent(root, container, direction)
	if !ok {
		return "", false
	}
	if err := f.Focus(ctx, root, target, SourceKeyboard); err != nil {
		return "", false
	}
	return target, true
}

// SwapDirection exchanges the focused tile with its neighbour in direction.
// Focus follows the focused tile to its new position. Returns root
// unchanged and false when there is no neighbour.
func (f *FocusController) SwapDirection(
	ctx context.Context,
	root *entity.LayoutNode,
	container entity.Rect,
	direction entity.Direction,
) (*entity.LayoutNode, bool) {
	target, ok := f.adjacent(root, container, direction)
	if !ok {
		return root, false
	}
	current := f.Current(root)

	logging.FromContext(ctx).Debug().
		Str("tile_id", string(current)).
		Str("with", string(target)).
		Str("direction", string(direction)).
		Msg("swapping tiles")

	return layout.SwapTiles(root, string(current), string(target)), true
}

// ResizeInDirection moves the divider nearest to the focused tile on the
// axis of direction by delta.
func (f *FocusController) ResizeInDirection(
	ctx context.Context,
	root *entity.LayoutNode,
	direction entity.Direction,
	delta float64,
) *entity.LayoutNode {
	current := f.Current(root)
	if current == "" {
		return root
	}
	next := layout.AdjustSplitInDirection(root, string(current), direction, delta)
	if next == root {
		logging.FromContext(ctx).Debug().
			Str("tile_id", string(current)).
			Str("direction", string(direction)).
			Msg("no split to resize in direction")
	}
	return next
}

// Reassign picks a new focus after removed left the tree: the most recently
// focused tile still present, else fallback, else the first tile of root.
func (f *FocusController) Reassign(ctx context.Context, root *entity.LayoutNode, removed, fallback entity.TileID) entity.TileID {
	f.mu.Lock()
	if f.focused != removed && layout.Contains(root, string(f.focused)) {
		cur := f.focused
		f.mu.Unlock()
		return cur
	}

	next := entity.TileID("")
	for _, id := range f.history.Newest() {
		if id != removed && layout.Contains(root, string(id)) {
			next = id
			break
		}
	}
	if next == "" && fallback != "" && layout.Contains(root, string(fallback)) {
		next = fallback
	}
	f.focused = ""
	if next != "" {
		f.focused = next
	} else {
		next = f.currentLocked(root)
	}
	f.mu.Unlock()

	if next != "" {
		logging.FromContext(ctx).Debug().
			Str("removed", string(removed)).
			Str("to", string(next)).
			Str("source", string(SourceClose)).
			Msg("focus reassigned")
		if f.waker != nil {
			f.waker.RequestWake(ctx, next)
		}
	}
	return next
}

// Set replaces the focused tile and clears the history without waking the
// tile. Used when a workspace is opened or restored, where the layout pass
// decides lifecycle state. Returns the focus after repair against root.
func (f *FocusController) Set(ctx context.Context, root *entity.LayoutNode, id entity.TileID, source FocusSource) entity.TileID {
	f.mu.Lock()
	f.history.Clear()
	f.focused = id
	got := f.currentLocked(root)
	f.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("requested", string(id)).
		Str("to", string(got)).
		Str("source", string(source)).
		Msg("focus set")
	return got
}

// History returns previously focused tiles, newest first.
func (f *FocusController) History() []entity.TileID {
	return f.history.Newest()
}

func (f *FocusController) adjacent(
	root *entity.LayoutNode,
	container entity.Rect,
	direction entity.Direction,
) (entity.TileID, bool) {
	if !direction.Valid() {
		return "", false
	}
	f.mu.Lock()
	current := f.currentLocked(root)
	tolerance := f.tolerance
	f.mu.Unlock()
	if current == "" {
		return "", false
	}
	bounds := layout.CalculateBounds(root, container)
	return layout.FindAdjacentTileWithTolerance(bounds, current, direction, tolerance)
}
