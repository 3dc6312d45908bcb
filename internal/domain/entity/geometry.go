package entity

// Rect is a tile's screen position and size in pixels.
// Used for bounds calculation and geometric navigation to find adjacent tiles.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns width × height, zero for degenerate rectangles.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Overlaps reports whether two rectangles share any interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// TileBounds pairs a tile with its computed rectangle.
type TileBounds struct {
	TileID TileID `json:"tileId"`
	Rect   Rect   `json:"rect"`
}

// Direction is a cardinal direction for focus, swap and resize.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case DirLeft, DirRight, DirUp, DirDown:
		return true
	}
	return false
}

// Axis returns the split orientation whose divider moves along d:
// left/right map to vertical splits, up/down to horizontal splits.
func (d Direction) Axis() SplitDirection {
	switch d {
	case DirLeft, DirRight:
		return SplitVertical
	case DirUp, DirDown:
		return SplitHorizontal
	}
	return ""
}

// Forward reports whether d points toward increasing coordinates (right or down).
func (d Direction) Forward() bool {
	return d == DirRight || d == DirDown
}
