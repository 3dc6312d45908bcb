package port

import (
	"context"

	"github.com/bnema/tessera/internal/domain/entity"
)

// OverlayPublisher receives the indicator state emitted after every layout
// pass (focus ring, audio badges). Only the shape is the engine's contract.
type OverlayPublisher interface {
	Publish(ctx context.Context, state entity.OverlayState)
}

// OverlayPublisherFunc adapts a function to OverlayPublisher.
type OverlayPublisherFunc func(ctx context.Context, state entity.OverlayState)

// Publish calls f.
func (f OverlayPublisherFunc) Publish(ctx context.Context, state entity.OverlayState) {
	f(ctx, state)
}
