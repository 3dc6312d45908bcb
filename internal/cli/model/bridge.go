package model

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tessera/internal/application/port"
	"github.com/bnema/tessera/internal/domain/entity"
)

// OverlayMsg carries the overlay state published after a layout pass.
type OverlayMsg struct {
	State entity.OverlayState
}

// TransitionMsg reports a tile that finished a sleep or wake.
type TransitionMsg struct {
	Tile entity.Tile
}

// Bridge forwards workspace events into a running Bubble Tea program. It is
// the workspace's overlay publisher.
type Bridge struct {
	mu      sync.RWMutex
	program *tea.Program
}

var _ port.OverlayPublisher = (*Bridge)(nil)

// Attach sets the program receiving events. Events before Attach are dropped.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Publish implements port.OverlayPublisher.
func (b *Bridge) Publish(_ context.Context, state entity.OverlayState) {
	b.send(OverlayMsg{State: state})
}

// Transition is registered as the lifecycle transition hook.
func (b *Bridge) Transition(tile entity.Tile) {
	b.send(TransitionMsg{Tile: tile})
}

// send never blocks: publishes happen inside Update, while the event loop
// is busy.
func (b *Bridge) send(msg tea.Msg) {
	b.mu.RLock()
	p := b.program
	b.mu.RUnlock()
	if p != nil {
		go p.Send(msg)
	}
}
