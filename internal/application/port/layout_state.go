package port

import "github.com/bnema/tessera/internal/domain/entity"

// LayoutStateProvider exposes the live workspace to the snapshot service.
type LayoutStateProvider interface {
	ID() entity.WorkspaceID
	// Snapshot returns the current serialized shape, or nil before the
	// workspace is opened.
	Snapshot() *entity.SessionState
}
