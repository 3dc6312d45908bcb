// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/tessera/internal/domain/entity"
)

// LayoutStateRepository persists workspace layout snapshots.
type LayoutStateRepository interface {
	// SaveSnapshot saves or updates the layout snapshot of a workspace.
	SaveSnapshot(ctx context.Context, id entity.WorkspaceID, state *entity.SessionState) error

	// GetSnapshot returns the latest snapshot for a workspace, or nil when none exists.
	GetSnapshot(ctx context.Context, id entity.WorkspaceID) (*entity.StoredLayout, error)

	// DeleteSnapshot removes a workspace's snapshot.
	DeleteSnapshot(ctx context.Context, id entity.WorkspaceID) error

	// ListSnapshots returns summary info for every stored workspace, newest first.
	ListSnapshots(ctx context.Context) ([]entity.LayoutSummary, error)
}
