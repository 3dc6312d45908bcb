package layout

import (
	"math"

	"github.com/bnema/tessera/internal/domain/entity"
)

// DefaultAdjacencyTolerance is the slack, in pixels, allowed between a
// candidate's far edge and the current tile's near edge.
const DefaultAdjacencyTolerance = 5

// FindAdjacentTile returns the nearest tile in direction from current using
// DefaultAdjacencyTolerance.
func FindAdjacentTile(bounds []entity.TileBounds, current entity.TileID, direction entity.Direction) (entity.TileID, bool) {
	return FindAdjacentTileWithTolerance(bounds, current, direction, DefaultAdjacencyTolerance)
}

// FindAdjacentTileWithTolerance returns the nearest tile in direction.
//
// A candidate qualifies when its far edge is at or before the current tile's
// near edge (within tolerance) and its center lies strictly on the requested
// side. Qualifying candidates are scored alignment*2 + distance, where
// alignment is the cross-axis center offset and distance the primary-axis
// center gap, so tiles in the same row or column beat closer diagonal ones.
// The lowest score wins; on equal scores the earlier entry in bounds wins.
func FindAdjacentTileWithTolerance(
	bounds []entity.TileBounds,
	current entity.TileID,
	direction entity.Direction,
	tolerance float64,
) (entity.TileID, bool) {
	cur, ok := BoundsOf(bounds, current)
	if !ok || !direction.Valid() {
		return "", false
	}

	var (
		best      entity.TileID
		bestScore = math.Inf(1)
		found     bool
	)
	for _, cand := range bounds {
		if cand.TileID == current {
			continue
		}
		distance, alignment, qualifies := evalCandidate(cur, cand.Rect, direction, tolerance)
		if !qualifies {
			continue
		}
		if score := alignment*2 + distance; score < bestScore {
			best, bestScore, found = cand.TileID, score, true
		}
	}
	return best, found
}

// evalCandidate returns the primary-axis distance and cross-axis alignment of
// cand relative to cur, and whether cand lies in direction.
func evalCandidate(cur, cand entity.Rect, direction entity.Direction, tolerance float64) (distance, alignment float64, ok bool) {
	ccx, ccy := cur.Center()
	kx, ky := cand.Center()

	switch direction {
	case entity.DirLeft:
		distance = ccx - kx
		alignment = math.Abs(ky - ccy)
		ok = float64(cand.Right()) <= float64(cur.X)+tolerance
	case entity.DirRight:
		distance = kx - ccx
		alignment = math.Abs(ky - ccy)
		ok = float64(cand.X) >= float64(cur.Right())-tolerance
	case entity.DirUp:
		distance = ccy - ky
		alignment = math.Abs(kx - ccx)
		ok = float64(cand.Bottom()) <= float64(cur.Y)+tolerance
	case entity.DirDown:
		distance = ky - ccy
		alignment = math.Abs(kx - ccx)
		ok = float64(cand.Y) >= float64(cur.Bottom())-tolerance
	}
	return distance, alignment, ok && distance > 0
}
