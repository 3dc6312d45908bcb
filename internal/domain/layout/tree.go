// Package layout implements the binary space partition behind the tiling
// workspace: split, remove, resize, swap, bounds and adjacency search.
//
// Every function here is pure. Inputs are never mutated; operations return a
// new root that shares every untouched subtree with the old one, or the very
// same root pointer when nothing changed.
package layout

import (
	"errors"
	"fmt"

	"github.com/bnema/tessera/internal/domain/entity"
)

// ErrEmptyTree is returned by Remove when the removed leaf was the root.
// It is distinct from "target not found", which Remove treats as a no-op.
var ErrEmptyTree = errors.New("layout tree is empty")

// ErrInvalidTree is returned by Validate.
var ErrInvalidTree = errors.New("invalid layout tree")

// Child identifies which side of a split a node lives in.
type Child int

const (
	ChildNone Child = iota
	ChildFirst
	ChildSecond
)

// String returns a human-readable representation of the child side.
func (c Child) String() string {
	switch c {
	case ChildFirst:
		return "first"
	case ChildSecond:
		return "second"
	default:
		return "none"
	}
}

// Split replaces the leaf addressed by targetID (leaf id or tile id) with a
// split whose first child is the original leaf and whose second child is a
// new leaf holding a fresh tile id. ok is false when the target is absent.
//
// newID is called once for the split node and once for the new tile (the
// new leaf reuses the tile id as its node id). Ids already present in root,
// as node or tile ids, are skipped. ok is also false when newID keeps
// returning taken ids.
func Split(
	root *entity.LayoutNode,
	targetID string,
	dir entity.SplitDirection,
	ratio float64,
	newID entity.IDGenerator,
) (newRoot *entity.LayoutNode, newTile entity.TileID, ok bool) {
	if root == nil || targetID == "" || !dir.Valid() {
		return root, "", false
	}
	target := FindLeaf(root, targetID)
	if target == nil {
		return root, "", false
	}

	splitRaw, found := freshID(root, newID, "")
	if !found {
		return root, "", false
	}
	tileRaw, found := freshID(root, newID, splitRaw)
	if !found {
		return root, "", false
	}
	splitID := entity.NodeID(splitRaw)
	newTile = entity.TileID(tileRaw)

	newRoot = rewriteLeaves(root, func(leaf *entity.LayoutNode) *entity.LayoutNode {
		if leaf != target {
			return leaf
		}
		return entity.NewSplit(splitID, dir, ratio, leaf, entity.NewLeaf(entity.NodeID(newTile), newTile))
	}, true)
	return newRoot, newTile, true
}

// maxIDAttempts bounds how many taken ids freshID skips.
const maxIDAttempts = 64

// freshID draws ids from newID until one is neither a node id nor a tile id
// in root and differs from reserved.
func freshID(root *entity.LayoutNode, newID entity.IDGenerator, reserved string) (string, bool) {
	for range maxIDAttempts {
		id := newID()
		if id == "" || id == reserved {
			continue
		}
		if FindNode(root, entity.NodeID(id)) != nil || Contains(root, id) {
			continue
		}
		return id, true
	}
	return "", false
}

// Remove deletes the leaf addressed by targetID and promotes its sibling
// into the parent's position. Removing the root leaf returns ErrEmptyTree.
// An absent target returns root unchanged and a nil error.
func Remove(root *entity.LayoutNode, targetID string) (*entity.LayoutNode, error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	target := FindLeaf(root, targetID)
	if target == nil {
		return root, nil
	}
	if target == root {
		return nil, ErrEmptyTree
	}
	newRoot, _ := removeFrom(root, target)
	return newRoot, nil
}

func removeFrom(n, target *entity.LayoutNode) (*entity.LayoutNode, bool) {
	if !n.IsSplit() {
		return n, false
	}
	if n.First == target {
		return n.Second, true
	}
	if n.Second == target {
		return n.First, true
	}
	if first, changed := removeFrom(n.First, target); changed {
		return withChildren(n, first, n.Second), true
	}
	if second, changed := removeFrom(n.Second, target); changed {
		return withChildren(n, n.First, second), true
	}
	return n, false
}

// ResizeSplit sets the ratio of the split with the given id, clamped to
// [MinRatio, MaxRatio]. Only the ancestor chain of that split is rebuilt.
// Unknown ids return root unchanged.
func ResizeSplit(root *entity.LayoutNode, splitID entity.NodeID, ratio float64) *entity.LayoutNode {
	ratio = entity.ClampRatio(ratio)
	newRoot, _ := rewriteSplit(root, splitID, func(s *entity.LayoutNode) *entity.LayoutNode {
		if s.Ratio == ratio {
			return s
		}
		return entity.NewSplit(s.ID, s.Direction, ratio, s.First, s.Second)
	})
	return newRoot
}

func rewriteSplit(
	n *entity.LayoutNode,
	splitID entity.NodeID,
	fn func(*entity.LayoutNode) *entity.LayoutNode,
) (*entity.LayoutNode, bool) {
	if !n.IsSplit() {
		return n, false
	}
	if n.ID == splitID {
		return fn(n), true
	}
	if first, found := rewriteSplit(n.First, splitID, fn); found {
		return withChildren(n, first, n.Second), true
	}
	if second, found := rewriteSplit(n.Second, splitID, fn); found {
		return withChildren(n, n.First, second), true
	}
	return n, false
}

// SwapTiles exchanges the tile ids held by the two addressed leaves. Split
// structure, ratios and leaf ids are untouched. Missing or identical targets
// return root unchanged.
func SwapTiles(root *entity.LayoutNode, id1, id2 string) *entity.LayoutNode {
	a := FindLeaf(root, id1)
	b := FindLeaf(root, id2)
	if a == nil || b == nil || a == b {
		return root
	}

	return rewriteLeaves(root, func(leaf *entity.LayoutNode) *entity.LayoutNode {
		switch leaf {
		case a:
			return entity.NewLeaf(leaf.ID, b.TileID)
		case b:
			return entity.NewLeaf(leaf.ID, a.TileID)
		}
		return leaf
	}, false)
}

// AdjustSplitInDirection grows or shrinks the tile toward direction by
// moving the nearest ancestor divider on the matching axis. left/right use
// vertical splits, up/down horizontal ones.
//
// When the tile sits in the split's first child the divider is its right or
// bottom edge, so right/down grows it (ratio+delta) and left/up shrinks it.
// In the second child the divider is its left or top edge, so left/up grows
// it (ratio-delta) and right/down shrinks it. No matching ancestor returns
// root unchanged.
func AdjustSplitInDirection(
	root *entity.LayoutNode,
	tileID string,
	direction entity.Direction,
	delta float64,
) *entity.LayoutNode {
	axis := direction.Axis()
	if axis == "" {
		return root
	}

	for _, split := range FindAncestorSplits(root, tileID) {
		if split.Direction != axis {
			continue
		}

		side := WhichChild(split, tileID)
		grows := (side == ChildFirst) == direction.Forward()
		change := delta
		if !grows {
			change = -delta
		}
		if side == ChildSecond {
			change = -change
		}
		return ResizeSplit(root, split.ID, split.Ratio+change)
	}
	return root
}

// rewriteLeaves rebuilds the tree with fn applied to every leaf, reusing any
// subtree in which fn changed nothing. With once set it stops after the
// first leaf that fn replaced.
func rewriteLeaves(
	root *entity.LayoutNode,
	fn func(*entity.LayoutNode) *entity.LayoutNode,
	once bool,
) *entity.LayoutNode {
	done := false
	var walk func(n *entity.LayoutNode) *entity.LayoutNode
	walk = func(n *entity.LayoutNode) *entity.LayoutNode {
		if n == nil || (once && done) {
			return n
		}
		if n.IsLeaf() {
			replaced := fn(n)
			if replaced != n {
				done = true
			}
			return replaced
		}
		first := walk(n.First)
		second := walk(n.Second)
		if first == n.First && second == n.Second {
			return n
		}
		return withChildren(n, first, second)
	}
	return walk(root)
}

func withChildren(n, first, second *entity.LayoutNode) *entity.LayoutNode {
	cp := *n
	cp.First = first
	cp.Second = second
	return &cp
}

// AllTileIDs returns every tile id in depth-first order, first child first.
func AllTileIDs(root *entity.LayoutNode) []entity.TileID {
	var ids []entity.TileID
	root.Walk(func(n *entity.LayoutNode) bool {
		if n.IsLeaf() {
			ids = append(ids, n.TileID)
		}
		return true
	})
	return ids
}

// CountTiles returns the number of leaves.
func CountTiles(root *entity.LayoutNode) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return 1
	}
	return CountTiles(root.First) + CountTiles(root.Second)
}

// FindLeaf returns the leaf addressed by id, or nil. Tile ids take
// precedence over leaf ids, which can diverge from them after a swap.
func FindLeaf(root *entity.LayoutNode, id string) *entity.LayoutNode {
	if id == "" {
		return nil
	}
	var byNode *entity.LayoutNode
	var byTile *entity.LayoutNode
	root.Walk(func(n *entity.LayoutNode) bool {
		if !n.IsLeaf() {
			return true
		}
		if string(n.TileID) == id {
			byTile = n
			return false
		}
		if byNode == nil && string(n.ID) == id {
			byNode = n
		}
		return true
	})
	if byTile != nil {
		return byTile
	}
	return byNode
}

// Contains reports whether a leaf addressed by id exists.
func Contains(root *entity.LayoutNode, id string) bool {
	return FindLeaf(root, id) != nil
}

// FindNode returns the node (split or leaf) with the given node id, or nil.
func FindNode(root *entity.LayoutNode, id entity.NodeID) *entity.LayoutNode {
	var found *entity.LayoutNode
	root.Walk(func(n *entity.LayoutNode) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindParentSplit returns the split directly holding the leaf addressed by
// id, or nil when the leaf is the root or absent.
func FindParentSplit(root *entity.LayoutNode, id string) *entity.LayoutNode {
	ancestors := FindAncestorSplits(root, id)
	if len(ancestors) == 0 {
		return nil
	}
	return ancestors[0]
}

// FindAncestorSplits returns the splits above the leaf addressed by id,
// innermost first.
func FindAncestorSplits(root *entity.LayoutNode, id string) []*entity.LayoutNode {
	target := FindLeaf(root, id)
	if target == nil {
		return nil
	}
	var path []*entity.LayoutNode
	if !pathTo(root, target, &path) {
		return nil
	}
	// path is outermost first
	out := make([]*entity.LayoutNode, 0, len(path))
	for i := len(path) - 1; i >= 0; i-- {
		out = append(out, path[i])
	}
	return out
}

func pathTo(n, target *entity.LayoutNode, path *[]*entity.LayoutNode) bool {
	if n == nil {
		return false
	}
	if n.IsLeaf() {
		return n == target
	}
	*path = append(*path, n)
	if pathTo(n.First, target, path) || pathTo(n.Second, target, path) {
		return true
	}
	*path = (*path)[:len(*path)-1]
	return false
}

// WhichChild reports which side of split contains the leaf addressed by id.
func WhichChild(split *entity.LayoutNode, id string) Child {
	if !split.IsSplit() {
		return ChildNone
	}
	target := FindLeaf(split, id)
	if target == nil {
		return ChildNone
	}
	var path []*entity.LayoutNode
	if pathTo(split.First, target, &path) {
		return ChildFirst
	}
	return ChildSecond
}

// Depth returns the number of levels in the tree; a single leaf has depth 1.
func Depth(root *entity.LayoutNode) int {
	if root == nil {
		return 0
	}
	if root.IsLeaf() {
		return 1
	}
	return 1 + max(Depth(root.First), Depth(root.Second))
}

// Validate checks structural invariants: every split has two children, a
// valid direction and an in-range ratio; node ids and tile ids are unique.
func Validate(root *entity.LayoutNode) error {
	if root == nil {
		return ErrEmptyTree
	}

	nodes := make(map[entity.NodeID]struct{})
	tiles := make(map[entity.TileID]struct{})
	var err error
	root.Walk(func(n *entity.LayoutNode) bool {
		if _, dup := nodes[n.ID]; dup {
			err = fmt.Errorf("%w: duplicate node id %q", ErrInvalidTree, n.ID)
			return false
		}
		nodes[n.ID] = struct{}{}

		if n.IsLeaf() {
			if _, dup := tiles[n.TileID]; dup {
				err = fmt.Errorf("%w: duplicate tile id %q", ErrInvalidTree, n.TileID)
				return false
			}
			tiles[n.TileID] = struct{}{}
			return true
		}

		switch {
		case n.First == nil || n.Second == nil:
			err = fmt.Errorf("%w: split %q is missing a child", ErrInvalidTree, n.ID)
		case !n.Direction.Valid():
			err = fmt.Errorf("%w: split %q has direction %q", ErrInvalidTree, n.ID, n.Direction)
		case n.Ratio < entity.MinRatio || n.Ratio > entity.MaxRatio:
			err = fmt.Errorf("%w: split %q ratio %v out of range", ErrInvalidTree, n.ID, n.Ratio)
		}
		return err == nil
	})
	return err
}
