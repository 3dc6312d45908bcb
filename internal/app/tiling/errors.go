// Package tiling hosts the runtime controllers of a tiled workspace: the
// lifecycle controller that puts small tiles to sleep, the focus controller,
// and the Workspace facade tying them to the layout tree.
package tiling

import "errors"

var (
	// ErrContentViewCreation wraps provider failures when materializing a view.
	ErrContentViewCreation = errors.New("content view creation failed")
	// ErrTileNotFound is returned when an operation names an unknown tile.
	ErrTileNotFound = errors.New("tile not found")
	// ErrSplitNotFound is returned when a resize names an unknown split node.
	ErrSplitNotFound = errors.New("split not found")
	// ErrLastTile is returned when closing the only remaining tile.
	ErrLastTile = errors.New("cannot close the last tile")
	// ErrDuplicateTile is returned when a new tile would reuse a tile id that
	// is still in use.
	ErrDuplicateTile = errors.New("tile id already in use")
	// ErrInvalidDirection is returned for an unknown direction value.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrEmptyWorkspace is returned by operations that need at least one tile
	// before the workspace was opened or restored.
	ErrEmptyWorkspace = errors.New("workspace has no tiles")
)
