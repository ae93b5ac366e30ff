package routing

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

const (
	cubicPullMinAlpha = 0.50
	cubicPullMaxAlpha = 0.78
	cubicPullScale    = 140
	throughMidpointK  = 4.0 / 3.0
)

// cubicThroughMidpoint builds control points so the resulting cubic
// passes through waypoint at t=0.5 (by symmetry of the construction).
func cubicThroughMidpoint(start, end, waypoint model.Point) (c1, c2 model.Point) {
	c1 = model.Point{
		X: start.X + (waypoint.X-start.X)*throughMidpointK,
		Y: start.Y + (waypoint.Y-start.Y)*throughMidpointK,
	}
	c2 = model.Point{
		X: end.X + (waypoint.X-end.X)*throughMidpointK,
		Y: end.Y + (waypoint.Y-end.Y)*throughMidpointK,
	}
	return c1, c2
}

// cubicPullToward builds control points pulled toward waypoint by a
// fraction that shrinks as the waypoint gets farther from the chord.
func cubicPullToward(start, end, waypoint model.Point) (c1, c2 model.Point) {
	d1 := hypot(waypoint.X-start.X, waypoint.Y-start.Y)
	d2 := hypot(waypoint.X-end.X, waypoint.Y-end.Y)
	d := math32.Max(d1+d2, 1e-6)
	a := math32.Max(cubicPullMinAlpha, math32.Min(cubicPullMaxAlpha, d/(d+cubicPullScale)))
	c1 = model.Point{X: start.X + (waypoint.X-start.X)*a, Y: start.Y + (waypoint.Y-start.Y)*a}
	c2 = model.Point{X: end.X + (waypoint.X-end.X)*a, Y: end.Y + (waypoint.Y-end.Y)*a}
	return c1, c2
}

// chooseCurvedPath picks the path geometry for a curved arrow: the
// default quadratic if it clears every non-attached obstacle, else the
// best of up to 24*2 candidate cubics, else the quadratic as a
// fallback if no cubic improves on it.
func chooseCurvedPath(start, end, quadControl model.Point, attached []uint64, obstacles []geometry.ClosedShapeHit) Path {
	quadHitsByID, quadHits := sampleHits(start, end, attached, obstacles, func(t float32) model.Point {
		return geometry.PointAtQuadratic(start, quadControl, end, t)
	})
	if quadHits == 0 {
		return Path{Kind: Quadratic, Control: quadControl}
	}

	ordered := orderByHitSeverity(obstacles, quadHitsByID)
	candidates := waypointCandidates(start, end, ordered)

	type scored struct {
		path  Path
		hits  int
		score float32
	}
	var best *scored

	for _, w := range candidates {
		constructions := [2][2]model.Point{}
		constructions[0][0], constructions[0][1] = cubicThroughMidpoint(start, end, w)
		constructions[1][0], constructions[1][1] = cubicPullToward(start, end, w)

		for _, cc := range constructions {
			c1, c2 := cc[0], cc[1]
			_, hits := sampleHits(start, end, attached, obstacles, func(t float32) model.Point {
				return geometry.PointAtCubic(start, c1, c2, end, t)
			})
			score := hypot(c1.X-start.X, c1.Y-start.Y) + hypot(c2.X-end.X, c2.Y-end.Y)
			path := Path{Kind: Cubic, C1: c1, C2: c2}

			if hits == 0 {
				return path
			}
			if best == nil || hits < best.hits || (hits == best.hits && score < best.score) {
				best = &scored{path: path, hits: hits, score: score}
			}
		}
	}

	if best != nil && best.hits < quadHits {
		return best.path
	}
	return Path{Kind: Quadratic, Control: quadControl}
}
