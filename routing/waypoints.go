package routing

import (
	"sort"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

// orderByHitSeverity returns obstacles sorted by descending hit count
// on the quadratic sample pass, stable on ties (preserving document
// order) so repeated calls on equal inputs yield equal outputs.
func orderByHitSeverity(obstacles []geometry.ClosedShapeHit, hits []obstacleHits) []geometry.ClosedShapeHit {
	ordered := make([]geometry.ClosedShapeHit, len(obstacles))
	copy(ordered, obstacles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return hitCount(hits, ordered[i].ID) > hitCount(hits, ordered[j].ID)
	})
	return ordered
}

// waypointCandidates generates up to maxWaypoints candidate points the
// cubic curve is biased to pass near, derived from the top obstacles
// (ordered by hit severity) and the union of their inflated rects.
func waypointCandidates(start, end model.Point, obstacles []geometry.ClosedShapeHit) []model.Point {
	mid := model.Point{X: (start.X + end.X) * 0.5, Y: (start.Y + end.Y) * 0.5}

	top := obstacles
	if len(top) > topObstacleCount {
		top = top[:topObstacleCount]
	}

	var union geometry.Rect
	haveUnion := false
	var points []model.Point

	for _, o := range top {
		r := o.Rect.Inflate(candidateMargin, candidateMargin)
		if haveUnion {
			union = union.Union(r)
		} else {
			union = r
			haveUnion = true
		}

		cx := (r.MinX + r.MaxX) * 0.5
		cy := (r.MinY + r.MaxY) * 0.5

		// Edge midpoints, offset outward by the margin.
		points = append(points,
			model.Point{X: cx, Y: r.MinY - candidateMargin},
			model.Point{X: cx, Y: r.MaxY + candidateMargin},
			model.Point{X: r.MinX - candidateMargin, Y: cy},
			model.Point{X: r.MaxX + candidateMargin, Y: cy},
		)

		// Corners, offset outward by the margin.
		points = append(points,
			model.Point{X: r.MinX - candidateMargin, Y: r.MinY - candidateMargin},
			model.Point{X: r.MaxX + candidateMargin, Y: r.MinY - candidateMargin},
			model.Point{X: r.MinX - candidateMargin, Y: r.MaxY + candidateMargin},
			model.Point{X: r.MaxX + candidateMargin, Y: r.MaxY + candidateMargin},
		)

		// Midline points at the start/end midpoint's X.
		points = append(points,
			model.Point{X: mid.X, Y: r.MinY - candidateMargin},
			model.Point{X: mid.X, Y: r.MaxY + candidateMargin},
		)
	}

	if haveUnion {
		ucx := (union.MinX + union.MaxX) * 0.5
		ucy := (union.MinY + union.MaxY) * 0.5
		points = append(points,
			model.Point{X: ucx, Y: union.MinY - candidateMargin*2},
			model.Point{X: ucx, Y: union.MaxY + candidateMargin*2},
			model.Point{X: union.MinX - candidateMargin*2, Y: ucy},
			model.Point{X: union.MaxX + candidateMargin*2, Y: ucy},
		)
	}

	// Filter out any waypoint inside an obstacle's inflated rect.
	filtered := points[:0:0]
	for _, p := range points {
		inside := false
		for _, o := range obstacles {
			if o.Rect.Inflate(candidateMargin, candidateMargin).Contains(p) {
				inside = true
				break
			}
		}
		if !inside {
			filtered = append(filtered, p)
		}
	}

	// Dedup by proximity to a previously accepted waypoint, cap at
	// maxWaypoints.
	out := make([]model.Point, 0, maxWaypoints)
	for _, p := range filtered {
		dup := false
		for _, q := range out {
			if hypot(q.X-p.X, q.Y-p.Y) < waypointDedupRadius {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		out = append(out, p)
		if len(out) >= maxWaypoints {
			break
		}
	}
	return out
}
