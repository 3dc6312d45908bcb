// Package snapshot persists workspace layouts in the background, debouncing
// bursts of structural edits into a single write.
package snapshot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/application/usecase"
	"github.com/bnema/tessera/internal/logging"
)

const (
	defaultIntervalMs = 5000
	maxSaveAttempts   = 3
)

// Service handles debounced layout snapshots.
type Service struct {
	snapshotUC *usecase.SnapshotLayoutUseCase
	provider   port.LayoutStateProvider
	interval   time.Duration
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ready  bool // false until the restored layout has been applied
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new snapshot service.
func NewService(
	snapshotUC *usecase.SnapshotLayoutUseCase,
	provider port.LayoutStateProvider,
	intervalMs int,
) *Service {
	if intervalMs <= 0 {
		intervalMs = defaultIntervalMs
	}
	return &Service{
		snapshotUC: snapshotUC,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retryDelay: 50 * time.Millisecond,
	}
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("snapshot service started")
}

// SetReady marks the service as ready to save snapshots. Call it once the
// workspace has been opened or restored, so an empty state never overwrites
// a stored one.
func (s *Service) SetReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
}

// Stop stops the service and saves final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that state has changed. Saves are debounced.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}

	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}

		if err := s.saveSnapshot(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save layout snapshot")
		}
	})
}

// SaveNow forces an immediate save if anything changed.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}

	return s.saveSnapshot(ctx)
}

func (s *Service) saveSnapshot(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready {
		// keep dirty so the first save after SetReady is not lost
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.mu.Unlock()

	state := s.provider.Snapshot()
	if state == nil {
		return nil
	}
	input := usecase.SnapshotInput{WorkspaceID: s.provider.ID(), State: state}

	var err error
	for attempt := 1; attempt <= maxSaveAttempts; attempt++ {
		err = s.snapshotUC.Execute(ctx, input)
		if err == nil || !isTransient(err) {
			break
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt).Msg("retrying layout snapshot")
		select {
		case <-ctx.Done():
			err = errors.Join(err, ctx.Err())
			attempt = maxSaveAttempts
		case <-time.After(s.retryDelay):
		}
	}

	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return err
}

// isTransient reports whether a save failed because the database was busy.
func isTransient(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "sqlite_busy")
}
