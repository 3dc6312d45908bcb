package entity

import (
	"errors"
	"fmt"
)

// SessionState is the serialized layout handed to and received from the
// persistence collaborator. It is serialized to JSON and must round-trip
// byte-for-byte.
type SessionState struct {
	Layout        *LayoutNode  `json:"layout"`
	Tiles         []TileRecord `json:"tiles"`
	FocusedTileID TileID       `json:"focusedTileId"`
}

// ErrInvalidSessionState is returned by Validate.
var ErrInvalidSessionState = errors.New("invalid session state")

// TileCount returns the number of leaves in the stored layout.
func (s *SessionState) TileCount() int {
	count := 0
	s.Layout.Walk(func(n *LayoutNode) bool {
		if n.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// Record returns the tile record for id, or false.
func (s *SessionState) Record(id TileID) (TileRecord, bool) {
	for _, rec := range s.Tiles {
		if rec.ID == id {
			return rec, true
		}
	}
	return TileRecord{}, false
}

// Validate checks that the layout is non-empty, that every leaf tile id is
// unique and has a record, and that the focused tile (if any) exists.
func (s *SessionState) Validate() error {
	if s == nil || s.Layout == nil {
		return fmt.Errorf("%w: layout is empty", ErrInvalidSessionState)
	}

	records := make(map[TileID]struct{}, len(s.Tiles))
	for _, rec := range s.Tiles {
		records[rec.ID] = struct{}{}
	}

	seen := make(map[TileID]struct{})
	var walkErr error
	s.Layout.Walk(func(n *LayoutNode) bool {
		if n.IsSplit() && (n.First == nil || n.Second == nil) {
			walkErr = fmt.Errorf("%w: split %q is missing a child", ErrInvalidSessionState, n.ID)
			return false
		}
		if !n.IsLeaf() {
			return true
		}
		if _, dup := seen[n.TileID]; dup {
			walkErr = fmt.Errorf("%w: duplicate tile id %q", ErrInvalidSessionState, n.TileID)
			return false
		}
		seen[n.TileID] = struct{}{}
		if _, ok := records[n.TileID]; !ok {
			walkErr = fmt.Errorf("%w: tile %q has no record", ErrInvalidSessionState, n.TileID)
			return false
		}
		return true
	})
	if walkErr != nil {
		return walkErr
	}

	if s.FocusedTileID != "" {
		if _, ok := seen[s.FocusedTileID]; !ok {
			return fmt.Errorf("%w: focused tile %q not in layout", ErrInvalidSessionState, s.FocusedTileID)
		}
	}
	return nil
}
