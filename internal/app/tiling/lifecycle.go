package tiling

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
	"github.com/bnema/tessera/internal/logging"
)

// Phase is the transition marker of a tile's lifecycle record.
type Phase string

const (
	PhaseIdle            Phase = "idle"              // no transition in flight
	PhaseSleepInProgress Phase = "sleep_in_progress" // capturing and destroying the view
	PhaseWakeInProgress  Phase = "wake_in_progress"  // creating the view and applying bounds
)

// Default sleep thresholds in pixels.
const (
	DefaultSleepMinWidth  = 200
	DefaultSleepMinHeight = 150
)

// maxConcurrentBoundsUpdates caps provider calls fanned out by one pass.
const maxConcurrentBoundsUpdates = 8

// LifecycleConfig holds the size below which unfocused tiles go to sleep.
type LifecycleConfig struct {
	SleepMinWidth  int
	SleepMinHeight int
}

// DefaultLifecycleConfig returns the stock thresholds.
func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{SleepMinWidth: DefaultSleepMinWidth, SleepMinHeight: DefaultSleepMinHeight}
}

type tileRecord struct {
	tile        entity.Tile
	view        port.ViewHandle
	hasView     bool
	phase       Phase
	pendingWake bool
	removed     bool
	retained    *entity.RetainedContent
}

// LifecycleController decides, per tile, whether its content view is live or
// sleeping, and drives the provider calls that move it between the two.
//
// At most one transition runs per tile. A wake requested while a sleep is in
// flight is queued and runs as soon as the sleep finishes. Tiles never share
// locks beyond the short critical sections guarding the record map.
type LifecycleController struct {
	provider port.ContentViewProvider

	mu           sync.Mutex
	cfg          LifecycleConfig
	tiles        map[entity.TileID]*tileRecord
	onTransition func(entity.Tile)

	inflight sync.WaitGroup
}

// NewLifecycleController creates a controller backed by provider.
func NewLifecycleController(provider port.ContentViewProvider, cfg LifecycleConfig) *LifecycleController {
	if cfg.SleepMinWidth <= 0 {
		cfg.SleepMinWidth = DefaultSleepMinWidth
	}
	if cfg.SleepMinHeight <= 0 {
		cfg.SleepMinHeight = DefaultSleepMinHeight
	}
	return &LifecycleController{
		provider: provider,
		cfg:      cfg,
		tiles:    make(map[entity.TileID]*tileRecord),
	}
}

// SetConfig replaces the sleep thresholds. Takes effect on the next pass.
func (c *LifecycleController) SetConfig(cfg LifecycleConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cfg.SleepMinWidth > 0 {
		c.cfg.SleepMinWidth = cfg.SleepMinWidth
	}
	if cfg.SleepMinHeight > 0 {
		c.cfg.SleepMinHeight = cfg.SleepMinHeight
	}
}

// OnTransition registers a callback invoked after every completed (or
// failed) transition with the tile's resulting state.
func (c *LifecycleController) OnTransition(fn func(entity.Tile)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTransition = fn
}

// Add registers a new tile and materializes its view, blocking until the
// provider answers. On creation failure the tile is kept as Sleeping with its
// error recorded so a later focus can retry; the error is also returned,
// wrapped in ErrContentViewCreation.
func (c *LifecycleController) Add(ctx context.Context, tile entity.Tile) error {
	rec, err := c.register(ctx, tile)
	if err != nil {
		return err
	}
	c.inflight.Add(1)
	defer c.inflight.Done()
	return c.runWake(ctx, tile.ID, rec)
}

// AddAsync registers a new tile in PhaseWakeInProgress and creates its view
// in the background. Only ErrDuplicateTile is returned; creation failures
// end up in Tile.Err.
func (c *LifecycleController) AddAsync(ctx context.Context, tile entity.Tile) error {
	rec, err := c.register(ctx, tile)
	if err != nil {
		return err
	}
	c.spawn(context.WithoutCancel(ctx), tile.ID, rec, c.runWake)
	return nil
}

// register stores a record for tile. A record of a removed tile whose
// transition is still running may be replaced; its transition keeps its own
// pointer and never touches the new one.
func (c *LifecycleController) register(ctx context.Context, tile entity.Tile) (*tileRecord, error) {
	rec := &tileRecord{tile: tile, phase: PhaseWakeInProgress}
	rec.tile.State = entity.TileSleeping
	rec.retained = &entity.RetainedContent{URL: tile.URL, Title: tile.Title, Muted: tile.Muted}

	c.mu.Lock()
	if existing, ok := c.tiles[tile.ID]; ok && !existing.removed {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateTile, tile.ID)
	}
	c.tiles[tile.ID] = rec
	c.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("tile_id", string(tile.ID)).Str("url", tile.URL).Msg("adding tile")
	return rec, nil
}

// Restore registers a tile as Sleeping with retained metadata only; the next
// layout pass decides whether it wakes.
func (c *LifecycleController) Restore(rec entity.TileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tiles[rec.ID] = &tileRecord{
		tile: entity.Tile{
			ID:    rec.ID,
			URL:   rec.URL,
			Title: rec.Title,
			Muted: rec.IsMuted,
			State: entity.TileSleeping,
		},
		phase:    PhaseIdle,
		retained: &entity.RetainedContent{URL: rec.URL, Title: rec.Title, Muted: rec.IsMuted},
	}
}

// Apply runs the lifecycle half of a layout pass: it records each tile's new
// bounds, starts sleep or wake transitions where the size or focus calls for
// one, and pushes bounds to every idle live view. Transitions run in the
// background; tiles with a transition already in flight are left to it.
//
// Returned errors are bounds-update failures, joined; they never abort the
// pass for other tiles.
func (c *LifecycleController) Apply(ctx context.Context, bounds []entity.TileBounds, focused entity.TileID) error {
	log := logging.FromContext(ctx)

	type boundsUpdate struct {
		id   entity.TileID
		view port.ViewHandle
		rect entity.Rect
	}
	var (
		updates []boundsUpdate
		sleeps  []*tileRecord
		wakes   []*tileRecord
	)

	c.mu.Lock()
	for _, b := range bounds {
		rec, ok := c.tiles[b.TileID]
		if !ok || rec.removed {
			continue
		}
		rec.tile.Bounds = b.Rect
		isFocused := b.TileID == focused
		small := c.isSmallLocked(b.Rect)

		switch rec.phase {
		case PhaseIdle:
			switch {
			case rec.tile.State == entity.TileLive && small && !isFocused:
				rec.phase = PhaseSleepInProgress
				sleeps = append(sleeps, rec)
			case rec.tile.State == entity.TileLive:
				updates = append(updates, boundsUpdate{id: b.TileID, view: rec.view, rect: b.Rect})
			case rec.tile.Err != nil && !isFocused:
				// failed creations are retried on focus only
			case !small || isFocused:
				rec.phase = PhaseWakeInProgress
				wakes = append(wakes, rec)
			}
		case PhaseSleepInProgress:
			if !small || isFocused {
				rec.pendingWake = true
			}
		case PhaseWakeInProgress:
			// bounds are applied when the wake completes
		}
	}
	c.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	for _, rec := range sleeps {
		c.spawn(bg, rec.tile.ID, rec, c.runSleep)
	}
	for _, rec := range wakes {
		c.spawn(bg, rec.tile.ID, rec, c.runWake)
	}

	if len(sleeps)+len(wakes) > 0 {
		log.Debug().Int("sleeping", len(sleeps)).Int("waking", len(wakes)).Msg("lifecycle transitions scheduled")
	}

	var (
		errMu sync.Mutex
		errs  []error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBoundsUpdates)
	for _, u := range updates {
		g.Go(func() error {
			if err := c.provider.SetBounds(gctx, u.view, u.rect); err != nil {
				log.Warn().Err(err).Str("tile_id", string(u.id)).Msg("failed to apply tile bounds")
				errMu.Lock()
				errs = append(errs, fmt.Errorf("set bounds for %s: %w", u.id, err))
				errMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// RequestWake asks for tile id to become live regardless of its size. If a
// sleep is in flight the wake is queued behind it. Returns false when the
// tile is unknown or already live.
func (c *LifecycleController) RequestWake(ctx context.Context, id entity.TileID) bool {
	c.mu.Lock()
	rec, ok := c.tiles[id]
	if !ok || rec.removed {
		c.mu.Unlock()
		return false
	}

	switch rec.phase {
	case PhaseSleepInProgress:
		rec.pendingWake = true
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("tile_id", string(id)).Msg("wake queued behind in-flight sleep")
		return true
	case PhaseWakeInProgress:
		c.mu.Unlock()
		return true
	}

	if rec.tile.State == entity.TileLive {
		c.mu.Unlock()
		return false
	}
	rec.phase = PhaseWakeInProgress
	c.mu.Unlock()

	c.spawn(context.WithoutCancel(ctx), id, rec, c.runWake)
	return true
}

type transition func(ctx context.Context, id entity.TileID, rec *tileRecord) error

func (c *LifecycleController) spawn(ctx context.Context, id entity.TileID, rec *tileRecord, run transition) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		_ = run(ctx, id, rec)
	}()
}

// runSleep captures a snapshot, destroys the view and keeps the metadata.
// The record must already be in PhaseSleepInProgress. Metadata is read after
// the view is gone so updates made during the capture are kept.
func (c *LifecycleController) runSleep(base context.Context, id entity.TileID, rec *tileRecord) error {
	ctx := logging.WithPhase(logging.WithTileID(base, string(id)), string(PhaseSleepInProgress))
	log := logging.FromContext(ctx)

	c.mu.Lock()
	view := rec.view
	c.mu.Unlock()

	img, err := c.provider.Capture(ctx, view)
	if err != nil {
		log.Warn().Err(err).Msg("snapshot capture failed, using title placeholder")
		img = nil
	}

	if err := c.provider.Destroy(ctx, view); err != nil {
		log.Error().Err(err).Msg("failed to destroy content view, tile stays live")
		c.mu.Lock()
		rec.phase = PhaseIdle
		rec.pendingWake = false
		c.finishLocked(id, rec)
		return err
	}

	c.mu.Lock()
	rec.retained = &entity.RetainedContent{
		URL:      rec.tile.URL,
		Title:    rec.tile.Title,
		Muted:    rec.tile.Muted,
		Snapshot: img,
	}
	rec.hasView = false
	rec.view = 0
	rec.tile.State = entity.TileSleeping
	rec.phase = PhaseIdle

	if rec.pendingWake && !rec.removed {
		rec.pendingWake = false
		rec.phase = PhaseWakeInProgress
		c.mu.Unlock()
		log.Debug().Msg("tile slept, running queued wake")
		return c.runWake(base, id, rec)
	}
	c.finishLocked(id, rec)

	log.Debug().Bool("snapshot", len(img) > 0).Msg("tile is sleeping")
	return nil
}

// runWake recreates the view from retained metadata. The record must
// already be in PhaseWakeInProgress.
func (c *LifecycleController) runWake(ctx context.Context, id entity.TileID, rec *tileRecord) error {
	ctx = logging.WithPhase(logging.WithTileID(ctx, string(id)), string(PhaseWakeInProgress))
	log := logging.FromContext(ctx)

	c.mu.Lock()
	url := rec.tile.URL
	if rec.retained != nil {
		url = rec.retained.URL
	}
	c.mu.Unlock()

	view, err := c.provider.Create(ctx, url)
	if err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrContentViewCreation, err)
		log.Error().Err(err).Str("url", url).Msg("failed to create content view")
		c.mu.Lock()
		rec.tile.Err = wrapped
		rec.phase = PhaseIdle
		c.finishLocked(id, rec)
		return wrapped
	}

	c.mu.Lock()
	if rec.removed {
		c.mu.Unlock()
		log.Debug().Msg("tile removed while waking, releasing new view")
		if destroyErr := c.provider.Destroy(ctx, view); destroyErr != nil {
			log.Warn().Err(destroyErr).Msg("failed to destroy orphaned view")
		}
		c.mu.Lock()
		c.finishLocked(id, rec)
		return nil
	}
	rec.view = view
	rec.hasView = true
	rec.retained = nil
	rec.tile.State = entity.TileLive
	rec.tile.Err = nil
	muted := rec.tile.Muted
	c.mu.Unlock()

	if muted {
		if err := c.provider.SetMuted(ctx, view, true); err != nil {
			log.Warn().Err(err).Msg("failed to restore mute state")
		}
	}

	// Passes that ran during the wake only recorded their bounds.
	var applied entity.Rect
	c.mu.Lock()
	for !rec.removed && rec.tile.Bounds != applied {
		bounds := rec.tile.Bounds
		c.mu.Unlock()
		if bounds.Area() > 0 {
			if err := c.provider.SetBounds(ctx, view, bounds); err != nil {
				log.Warn().Err(err).Msg("failed to apply bounds after wake")
			}
		}
		applied = bounds
		c.mu.Lock()
	}
	rec.phase = PhaseIdle
	rec.pendingWake = false
	if rec.removed {
		c.mu.Unlock()
		if err := c.provider.Destroy(ctx, view); err != nil {
			log.Warn().Err(err).Msg("failed to destroy view of removed tile")
		}
		c.mu.Lock()
	}
	c.finishLocked(id, rec)

	log.Debug().Stringer("view", view).Msg("tile is live")
	return nil
}

// finishLocked drops removed records and notifies the transition hook.
// Must be called with c.mu held; releases it.
func (c *LifecycleController) finishLocked(id entity.TileID, rec *tileRecord) {
	if rec.removed && c.tiles[id] == rec {
		delete(c.tiles, id)
	}
	hook := c.onTransition
	tile := rec.tile
	c.mu.Unlock()

	if hook != nil && !rec.removed {
		hook(tile)
	}
}

// Remove tears down a tile. When a transition is in flight the record is
// marked and the transition releases the view when it finishes.
func (c *LifecycleController) Remove(ctx context.Context, id entity.TileID) error {
	c.mu.Lock()
	rec, ok := c.tiles[id]
	if !ok {
		c.mu.Unlock()
		return nil
	}
	rec.removed = true
	if rec.phase != PhaseIdle {
		c.mu.Unlock()
		logging.FromContext(ctx).Debug().Str("tile_id", string(id)).Str("phase", string(rec.phase)).
			Msg("tile removed mid-transition, deferring teardown")
		return nil
	}
	delete(c.tiles, id)
	view, hasView := rec.view, rec.hasView
	c.mu.Unlock()

	if !hasView {
		return nil
	}
	if err := c.provider.Destroy(ctx, view); err != nil {
		return fmt.Errorf("destroy view of tile %s: %w", id, err)
	}
	return nil
}

// SetMuted records the mute flag and forwards it to a live view.
func (c *LifecycleController) SetMuted(ctx context.Context, id entity.TileID, muted bool) error {
	c.mu.Lock()
	rec, ok := c.tiles[id]
	if !ok || rec.removed {
		c.mu.Unlock()
		return ErrTileNotFound
	}
	rec.tile.Muted = muted
	if rec.retained != nil {
		rec.retained.Muted = muted
	}
	view, live := rec.view, rec.hasView && rec.phase == PhaseIdle
	c.mu.Unlock()

	if !live {
		return nil
	}
	return c.provider.SetMuted(ctx, view, muted)
}

// Update applies fn to the tile's metadata (title, url, audio flag) and
// mirrors url and title into retained content of a sleeping tile.
func (c *LifecycleController) Update(id entity.TileID, fn func(*entity.Tile)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.tiles[id]
	if !ok || rec.removed {
		return false
	}
	state, bounds, tileErr := rec.tile.State, rec.tile.Bounds, rec.tile.Err
	fn(&rec.tile)
	// lifecycle-owned fields are not for callers to change
	rec.tile.ID, rec.tile.State, rec.tile.Bounds, rec.tile.Err = id, state, bounds, tileErr
	if rec.retained != nil {
		rec.retained.URL = rec.tile.URL
		rec.retained.Title = rec.tile.Title
	}
	return true
}

// Tile returns a copy of the tile.
func (c *LifecycleController) Tile(id entity.TileID) (entity.Tile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.tiles[id]
	if !ok || rec.removed {
		return entity.Tile{}, false
	}
	return rec.tile, true
}

// Phase returns the transition marker of a tile.
func (c *LifecycleController) Phase(id entity.TileID) Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.tiles[id]; ok {
		return rec.phase
	}
	return PhaseIdle
}

// Retained returns a copy of what a sleeping tile kept, or nil.
func (c *LifecycleController) Retained(id entity.TileID) *entity.RetainedContent {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.tiles[id]
	if !ok || rec.retained == nil {
		return nil
	}
	cp := *rec.retained
	return &cp
}

// Wait blocks until no transition is in flight.
func (c *LifecycleController) Wait() {
	c.inflight.Wait()
}

// Shutdown waits for in-flight transitions then destroys every live view
// concurrently.
func (c *LifecycleController) Shutdown(ctx context.Context) error {
	c.Wait()

	c.mu.Lock()
	views := make(map[entity.TileID]port.ViewHandle)
	for id, rec := range c.tiles {
		if rec.hasView {
			views[id] = rec.view
		}
	}
	c.tiles = make(map[entity.TileID]*tileRecord)
	c.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for id, view := range views {
		g.Go(func() error {
			if err := c.provider.Destroy(gctx, view); err != nil {
				return fmt.Errorf("destroy view of tile %s: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *LifecycleController) isSmallLocked(r entity.Rect) bool {
	return r.Width < c.cfg.SleepMinWidth || r.Height < c.cfg.SleepMinHeight
}
