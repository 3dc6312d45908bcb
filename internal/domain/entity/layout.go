// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TileID uniquely identifies a tile (one content pane) across the whole tree.
type TileID string

// NodeID identifies a node (split or leaf) in the layout tree.
type NodeID string

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// SplitDirection indicates the axis a split divides along.
type SplitDirection string

const (
	// SplitHorizontal stacks children top/bottom; the divider moves on the y-axis.
	SplitHorizontal SplitDirection = "horizontal"
	// SplitVertical places children left/right; the divider moves on the x-axis.
	SplitVertical SplitDirection = "vertical"
)

// Valid reports whether d is a known split direction.
func (d SplitDirection) Valid() bool {
	return d == SplitHorizontal || d == SplitVertical
}

// Ratio bounds for every split divider.
const (
	MinRatio     = 0.1
	MaxRatio     = 0.9
	DefaultRatio = 0.5
)

// ClampRatio forces r into [MinRatio, MaxRatio].
func ClampRatio(r float64) float64 {
	if r != r { // NaN
		return DefaultRatio
	}
	if r < MinRatio {
		return MinRatio
	}
	if r > MaxRatio {
		return MaxRatio
	}
	return r
}

// NodeKind tags a LayoutNode as a leaf or a split.
type NodeKind int

const (
	NodeLeaf NodeKind = iota
	NodeSplit
)

// LayoutNode is a node of the binary space partition.
//
// Nodes are immutable once built: every layout operation returns a new tree
// that shares untouched subtrees with its input. A node is either:
//   - Leaf: ID and TileID set, no children
//   - Split: ID, Direction, Ratio, First and Second set
type LayoutNode struct {
	Kind NodeKind
	ID   NodeID

	// Leaf
	TileID TileID

	// Split
	Direction SplitDirection
	Ratio     float64 // position of the divider, always within [MinRatio, MaxRatio]
	First     *LayoutNode
	Second    *LayoutNode
}

// NewLeaf creates a leaf node referencing a tile.
func NewLeaf(id NodeID, tile TileID) *LayoutNode {
	return &LayoutNode{Kind: NodeLeaf, ID: id, TileID: tile}
}

// NewSplit creates a split node. The ratio is clamped.
func NewSplit(id NodeID, dir SplitDirection, ratio float64, first, second *LayoutNode) *LayoutNode {
	return &LayoutNode{
		Kind:      NodeSplit,
		ID:        id,
		Direction: dir,
		Ratio:     ClampRatio(ratio),
		First:     first,
		Second:    second,
	}
}

// IsLeaf returns true if this node references a tile.
func (n *LayoutNode) IsLeaf() bool {
	return n != nil && n.Kind == NodeLeaf
}

// IsSplit returns true if this node divides space into two children.
func (n *LayoutNode) IsSplit() bool {
	return n != nil && n.Kind == NodeSplit
}

// Matches reports whether a leaf is addressed by id, either by node ID or tile ID.
func (n *LayoutNode) Matches(id string) bool {
	return n.IsLeaf() && (string(n.ID) == id || string(n.TileID) == id)
}

// Walk traverses the tree depth-first, first child before second.
// Returns early if fn returns false.
func (n *LayoutNode) Walk(fn func(*LayoutNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.IsSplit() {
		if !n.First.Walk(fn) {
			return false
		}
		return n.Second.Walk(fn)
	}
	return true
}

// Equal reports whether two trees have the same shape, ids, directions,
// ratios and tile assignments.
func (n *LayoutNode) Equal(other *LayoutNode) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n == other {
		return true
	}
	if n.Kind != other.Kind || n.ID != other.ID {
		return false
	}
	if n.IsLeaf() {
		return n.TileID == other.TileID
	}
	return n.Direction == other.Direction &&
		n.Ratio == other.Ratio &&
		n.First.Equal(other.First) &&
		n.Second.Equal(other.Second)
}

// Wire type tags.
const (
	nodeTypeSplit = "split"
	nodeTypeLeaf  = "leaf"
)

// ErrInvalidNode is returned when decoding a malformed layout node.
var ErrInvalidNode = errors.New("invalid layout node")

type splitWire struct {
	Type      string         `json:"type"`
	ID        NodeID         `json:"id"`
	Direction SplitDirection `json:"direction"`
	Ratio     float64        `json:"ratio"`
	First     *LayoutNode    `json:"first"`
	Second    *LayoutNode    `json:"second"`
}

type leafWire struct {
	Type   string `json:"type"`
	ID     NodeID `json:"id"`
	TileID TileID `json:"tileId"`
}

// MarshalJSON encodes the node as {type:"split",...} or {type:"leaf",...}.
// Field order is fixed so the output is byte-for-byte reproducible.
func (n *LayoutNode) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	if n.IsLeaf() {
		return json.Marshal(leafWire{Type: nodeTypeLeaf, ID: n.ID, TileID: n.TileID})
	}
	return json.Marshal(splitWire{
		Type:      nodeTypeSplit,
		ID:        n.ID,
		Direction: n.Direction,
		Ratio:     n.Ratio,
		First:     n.First,
		Second:    n.Second,
	})
}

// UnmarshalJSON decodes the tagged wire shape.
func (n *LayoutNode) UnmarshalJSON(data []byte) error {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case nodeTypeLeaf:
		var w leafWire
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		if w.TileID == "" {
			return fmt.Errorf("%w: leaf %q has no tileId", ErrInvalidNode, w.ID)
		}
		*n = LayoutNode{Kind: NodeLeaf, ID: w.ID, TileID: w.TileID}
	case nodeTypeSplit:
		var w splitWire
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		if w.First == nil || w.Second == nil {
			return fmt.Errorf("%w: split %q is missing a child", ErrInvalidNode, w.ID)
		}
		if !w.Direction.Valid() {
			return fmt.Errorf("%w: split %q has direction %q", ErrInvalidNode, w.ID, w.Direction)
		}
		*n = *NewSplit(w.ID, w.Direction, w.Ratio, w.First, w.Second)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidNode, head.Type)
	}
	return nil
}
