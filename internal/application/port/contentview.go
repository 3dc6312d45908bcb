// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns, allowing the tiling engine to
// remain independent of specific implementations (browser engines, GUIs, etc.).
package port

import (
	"context"
	"fmt"

	"github.com/bnema/tessera/internal/domain/entity"
)

// ViewHandle identifies a materialized content view owned by a provider.
type ViewHandle uint64

// String returns a human-readable representation of the handle.
func (h ViewHandle) String() string {
	return fmt.Sprintf("view#%d", uint64(h))
}

// ContentViewProvider materializes and tears down the content pane hosted
// by a tile. The engine never renders anything itself.
//
// Calls may block on I/O; implementations must be safe for concurrent use
// across different handles.
type ContentViewProvider interface {
	// Create materializes a view for url.
	Create(ctx context.Context, url string) (ViewHandle, error)
	// Destroy releases a view. The handle is invalid afterwards.
	Destroy(ctx context.Context, h ViewHandle) error
	// SetBounds positions the view in window coordinates.
	SetBounds(ctx context.Context, h ViewHandle, rect entity.Rect) error
	// SetMuted toggles audio output.
	SetMuted(ctx context.Context, h ViewHandle, muted bool) error
	// Capture returns an encoded image of the view. A nil image with a nil
	// error means nothing could be captured.
	Capture(ctx context.Context, h ViewHandle) ([]byte, error)
}
