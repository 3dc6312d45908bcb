package entity

import "time"

// WorkspaceID uniquely identifies a persisted workspace layout.
type WorkspaceID string

// StoredLayout is a session state as kept by the persistence layer.
type StoredLayout struct {
	WorkspaceID WorkspaceID
	State       *SessionState
	UpdatedAt   time.Time
}

// LayoutSummary provides summary information for listing stored layouts.
type LayoutSummary struct {
	WorkspaceID   WorkspaceID
	TileCount     int
	FocusedTileID TileID
	UpdatedAt     time.Time
}
