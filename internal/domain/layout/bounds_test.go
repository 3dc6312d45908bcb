package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tessera/internal/domain/entity"
)

func TestCalculateBounds_EndToEndScenario(t *testing.T) {
	container := entity.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	root := entity.NewLeaf("T1", "T1")

	ids := []string{"S1", "T2"}
	gen := func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	root, t2, ok := Split(root, "T1", entity.SplitVertical, 0.5, gen)
	require.True(t, ok)
	require.Equal(t, entity.TileID("T2"), t2)
	require.True(t, root.IsSplit())
	assert.Equal(t, entity.TileID("T1"), root.First.TileID)
	assert.Equal(t, entity.TileID("T2"), root.Second.TileID)

	assert.Equal(t, []entity.TileBounds{
		{TileID: "T1", Rect: entity.Rect{X: 0, Y: 0, Width: 400, Height: 600}},
		{TileID: "T2", Rect: entity.Rect{X: 400, Y: 0, Width: 400, Height: 600}},
	}, CalculateBounds(root, container))

	swapped := SwapTiles(root, "T1", "T2")
	got := CalculateBounds(swapped, container)
	t1, _ := BoundsOf(got, "T1")
	t2r, _ := BoundsOf(got, "T2")
	assert.Equal(t, entity.Rect{X: 400, Y: 0, Width: 400, Height: 600}, t1)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, Width: 400, Height: 600}, t2r)
	assert.Equal(t, root.ID, swapped.ID)
	assert.Equal(t, root.Ratio, swapped.Ratio)
}

func TestCalculateBounds_RoundsDivider(t *testing.T) {
	root := entity.NewSplit("s", entity.SplitHorizontal, 1.0/3.0, entity.NewLeaf("a", "a"), entity.NewLeaf("b", "b"))
	got := CalculateBounds(root, entity.Rect{X: 10, Y: 5, Width: 100, Height: 101})

	// divider = round(5 + 101/3) = round(38.67) = 39
	assert.Equal(t, entity.Rect{X: 10, Y: 5, Width: 100, Height: 34}, got[0].Rect)
	assert.Equal(t, entity.Rect{X: 10, Y: 39, Width: 100, Height: 67}, got[1].Rect)
}

func TestCalculateBounds_ExactCoverage(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		tree := randomTree(rng, rng.Intn(16))
		container := entity.Rect{
			X:      rng.Intn(200) - 100,
			Y:      rng.Intn(200) - 100,
			Width:  1 + rng.Intn(2000),
			Height: 1 + rng.Intn(1500),
		}
		bounds := CalculateBounds(tree, container)
		require.Len(t, bounds, CountTiles(tree))

		area := 0
		for j, b := range bounds {
			assert.GreaterOrEqual(t, b.Rect.Width, 0)
			assert.GreaterOrEqual(t, b.Rect.Height, 0)
			assert.GreaterOrEqual(t, b.Rect.X, container.X)
			assert.GreaterOrEqual(t, b.Rect.Y, container.Y)
			assert.LessOrEqual(t, b.Rect.Right(), container.Right())
			assert.LessOrEqual(t, b.Rect.Bottom(), container.Bottom())
			area += b.Rect.Area()
			for _, other := range bounds[j+1:] {
				assert.False(t, b.Rect.Overlaps(other.Rect), "iteration %d: %v overlaps %v", i, b, other)
			}
		}
		assert.Equal(t, container.Area(), area, "iteration %d", i)
	}
}

func TestCalculateBounds_Idempotent(t *testing.T) {
	tree := randomTree(rand.New(rand.NewSource(5)), 9)
	container := entity.Rect{Width: 1280, Height: 720}
	assert.Equal(t, CalculateBounds(tree, container), CalculateBounds(tree, container))
	assert.Nil(t, CalculateBounds(nil, container))
}

func TestCalculateDividers(t *testing.T) {
	root := entity.NewSplit("v", entity.SplitVertical, 0.25,
		entity.NewLeaf("a", "a"),
		entity.NewSplit("h", entity.SplitHorizontal, 0.5, entity.NewLeaf("b", "b"), entity.NewLeaf("c", "c")),
	)
	got := CalculateDividers(root, entity.Rect{Width: 800, Height: 600})
	require.Len(t, got, 2)
	assert.Equal(t, entity.Rect{X: 200, Y: 0, Height: 600}, got[0].Rect)
	assert.Equal(t, entity.Rect{X: 200, Y: 300, Width: 600}, got[1].Rect)
	assert.Equal(t, entity.Rect{Width: 800, Height: 600}, got[0].Parent)
	assert.Equal(t, entity.Rect{X: 200, Width: 600, Height: 600}, got[1].Parent)
}

func TestDividerAt(t *testing.T) {
	root := entity.NewSplit("v", entity.SplitVertical, 0.25,
		entity.NewLeaf("a", "a"),
		entity.NewSplit("h", entity.SplitHorizontal, 0.5, entity.NewLeaf("b", "b"), entity.NewLeaf("c", "c")),
	)
	dividers := CalculateDividers(root, entity.Rect{Width: 800, Height: 600})

	tests := []struct {
		name string
		x, y int
		want entity.NodeID
		ok   bool
	}{
		{name: "on vertical", x: 200, y: 50, want: "v", ok: true},
		{name: "within slop", x: 205, y: 50, want: "v", ok: true},
		{name: "on horizontal", x: 500, y: 296, want: "h", ok: true},
		{name: "horizontal only spans its parent", x: 100, y: 300, ok: false},
		{name: "inside a tile", x: 500, y: 100, ok: false},
		{name: "past the container", x: 200, y: 600, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DividerAt(dividers, tt.x, tt.y, 8)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.SplitID)
			}
		})
	}

	_, ok := DividerAt(nil, 0, 0, 8)
	assert.False(t, ok)
}

func TestDivider_RatioAt(t *testing.T) {
	vertical := Divider{Direction: entity.SplitVertical, Parent: entity.Rect{X: 200, Width: 600, Height: 600}}
	assert.InDelta(t, 0.5, vertical.RatioAt(500, 0), 1e-9)
	assert.Equal(t, entity.MinRatio, vertical.RatioAt(0, 0))
	assert.Equal(t, entity.MaxRatio, vertical.RatioAt(790, 0))

	horizontal := Divider{Direction: entity.SplitHorizontal, Parent: entity.Rect{Y: 100, Width: 50, Height: 400}}
	assert.InDelta(t, 0.25, horizontal.RatioAt(999, 200), 1e-9)

	assert.Equal(t, entity.DefaultRatio, Divider{Direction: entity.SplitVertical}.RatioAt(10, 10))
}
