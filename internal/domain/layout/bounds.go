package layout

import (
	"math"

	"github.com/bnema/tessera/internal/domain/entity"
)

// CalculateBounds partitions container among the tree's leaves.
//
// For a vertical split with ratio r the divider sits at round(x + w*r): the
// first child spans [x, divider) and the second [divider, x+w). Horizontal
// splits apply the same rule on the y-axis. Children therefore cover their
// parent exactly, with no gap and no overlap.
func CalculateBounds(root *entity.LayoutNode, container entity.Rect) []entity.TileBounds {
	if root == nil {
		return nil
	}
	out := make([]entity.TileBounds, 0, CountTiles(root))
	return appendBounds(out, root, container)
}

func appendBounds(out []entity.TileBounds, n *entity.LayoutNode, r entity.Rect) []entity.TileBounds {
	if n.IsLeaf() {
		return append(out, entity.TileBounds{TileID: n.TileID, Rect: r})
	}
	first, second := SplitRect(r, n.Direction, n.Ratio)
	out = appendBounds(out, n.First, first)
	return appendBounds(out, n.Second, second)
}

// SplitRect divides r at ratio along the axis of dir.
func SplitRect(r entity.Rect, dir entity.SplitDirection, ratio float64) (first, second entity.Rect) {
	if dir == entity.SplitVertical {
		divider := int(math.Round(float64(r.X) + float64(r.Width)*ratio))
		first = entity.Rect{X: r.X, Y: r.Y, Width: divider - r.X, Height: r.Height}
		second = entity.Rect{X: divider, Y: r.Y, Width: r.Right() - divider, Height: r.Height}
		return first, second
	}
	divider := int(math.Round(float64(r.Y) + float64(r.Height)*ratio))
	first = entity.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: divider - r.Y}
	second = entity.Rect{X: r.X, Y: divider, Width: r.Width, Height: r.Bottom() - divider}
	return first, second
}

// BoundsOf returns the rectangle computed for tile, or false.
func BoundsOf(bounds []entity.TileBounds, tile entity.TileID) (entity.Rect, bool) {
	for _, b := range bounds {
		if b.TileID == tile {
			return b.Rect, true
		}
	}
	return entity.Rect{}, false
}

// Divider describes the line between a split's two children, for overlays
// and mouse hit-testing.
type Divider struct {
	SplitID   entity.NodeID
	Direction entity.SplitDirection
	Rect      entity.Rect // zero-thickness line: Width 0 for vertical, Height 0 for horizontal
	Parent    entity.Rect // area divided by the split
}

// RatioAt returns the split ratio that would put the divider at (x, y),
// clamped to the allowed ratio range.
func (d Divider) RatioAt(x, y int) float64 {
	pos, origin, span := x, d.Parent.X, d.Parent.Width
	if d.Direction == entity.SplitHorizontal {
		pos, origin, span = y, d.Parent.Y, d.Parent.Height
	}
	if span <= 0 {
		return entity.DefaultRatio
	}
	return entity.ClampRatio(float64(pos-origin) / float64(span))
}

// DividerAt returns the innermost divider within slop of (x, y) along its
// axis. The point must lie within the divider's extent.
func DividerAt(dividers []Divider, x, y, slop int) (Divider, bool) {
	for i := len(dividers) - 1; i >= 0; i-- {
		d := dividers[i]
		if d.Direction == entity.SplitVertical {
			if abs(x-d.Rect.X) <= slop && y >= d.Rect.Y && y < d.Rect.Bottom() {
				return d, true
			}
			continue
		}
		if abs(y-d.Rect.Y) <= slop && x >= d.Rect.X && x < d.Rect.Right() {
			return d, true
		}
	}
	return Divider{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CalculateDividers returns one divider per split, outermost first.
func CalculateDividers(root *entity.LayoutNode, container entity.Rect) []Divider {
	var out []Divider
	var walk func(n *entity.LayoutNode, r entity.Rect)
	walk = func(n *entity.LayoutNode, r entity.Rect) {
		if !n.IsSplit() {
			return
		}
		first, second := SplitRect(r, n.Direction, n.Ratio)
		d := Divider{SplitID: n.ID, Direction: n.Direction, Parent: r}
		if n.Direction == entity.SplitVertical {
			d.Rect = entity.Rect{X: second.X, Y: r.Y, Height: r.Height}
		} else {
			d.Rect = entity.Rect{X: r.X, Y: second.Y, Width: r.Width}
		}
		out = append(out, d)
		walk(n.First, first)
		walk(n.Second, second)
	}
	walk(root, container)
	return out
}
