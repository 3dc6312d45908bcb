package layout

import (
	"fmt"
	"math/rand"

	"github.com/bnema/tessera/internal/domain/entity"
)

func counterIDs(prefix string) entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// randomTree grows a tree from a single leaf by splitting random leaves.
func randomTree(rng *rand.Rand, splits int) *entity.LayoutNode {
	ids := counterIDs("n")
	root := entity.NewLeaf("t0", "t0")
	for i := 0; i < splits; i++ {
		tiles := AllTileIDs(root)
		target := tiles[rng.Intn(len(tiles))]
		dir := entity.SplitVertical
		if rng.Intn(2) == 0 {
			dir = entity.SplitHorizontal
		}
		ratio := 0.1 + rng.Float64()*0.8
		root, _, _ = Split(root, string(target), dir, ratio, ids)
	}
	return root
}

// deepCopy builds an independent copy so tests can detect mutation.
func deepCopy(n *entity.LayoutNode) *entity.LayoutNode {
	if n == nil {
		return nil
	}
	cp := *n
	cp.First = deepCopy(n.First)
	cp.Second = deepCopy(n.Second)
	return &cp
}

func forEachSplit(root *entity.LayoutNode, fn func(*entity.LayoutNode)) {
	root.Walk(func(n *entity.LayoutNode) bool {
		if n.IsSplit() {
			fn(n)
		}
		return true
	})
}
