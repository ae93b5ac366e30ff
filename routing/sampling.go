package routing

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

const (
	penetrationSamples  = 801
	obstacleMargin      = 18
	endpointAllowance   = 14
	candidateMargin     = 26
	maxWaypoints        = 24
	waypointDedupRadius = 3
	topObstacleCount    = 6
)

// obstacleHits is the per-obstacle penetration count attributed while
// sampling a single candidate path.
type obstacleHits struct {
	id    uint64
	count int
}

func hypot(dx, dy float32) float32 { return math32.Sqrt(dx*dx + dy*dy) }

// sampleHits samples pointAt at penetrationSamples evenly spaced
// parameters in [0,1] and counts, per non-attached obstacle, how many
// samples fall inside both its inflated gate rectangle and its
// authoritative (uninflated) rectangle. Samples within endpointAllowance
// of start or end are skipped for obstacles that ARE attached — see
// DESIGN.md for why this allowance never actually fires.
func sampleHits(start, end model.Point, attached []uint64, obstacles []geometry.ClosedShapeHit, pointAt func(t float32) model.Point) ([]obstacleHits, int) {
	inflated := make([]geometry.Rect, len(obstacles))
	for i, o := range obstacles {
		inflated[i] = o.Rect.Inflate(obstacleMargin, obstacleMargin)
	}

	var hits []obstacleHits
	total := 0

	for i := 0; i <= penetrationSamples-1; i++ {
		t := float32(i) / float32(penetrationSamples-1)
		p := pointAt(t)

		for oi, o := range obstacles {
			if containsID(attached, o.ID) {
				if hypot(p.X-start.X, p.Y-start.Y) <= endpointAllowance ||
					hypot(p.X-end.X, p.Y-end.Y) <= endpointAllowance {
					continue
				}
				// Attached obstacles are never counted.
				continue
			}
			if !inflated[oi].Contains(p) {
				continue
			}
			if !o.Rect.Contains(p) {
				continue
			}
			total++
			hits = addHit(hits, o.ID)
		}
	}

	return hits, total
}

func addHit(hits []obstacleHits, id uint64) []obstacleHits {
	for i := range hits {
		if hits[i].id == id {
			hits[i].count++
			return hits
		}
	}
	return append(hits, obstacleHits{id: id, count: 1})
}

func hitCount(hits []obstacleHits, id uint64) int {
	for _, h := range hits {
		if h.id == id {
			return h.count
		}
	}
	return 0
}

func containsID(ids []uint64, id uint64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
