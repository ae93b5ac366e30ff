package routing

import (
	"sort"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

// minArrowLength is the minimum distance between resolved endpoints
// for an arrow-like shape to be rendered at all.
const minArrowLength = 0.5

// RenderArrows computes an ArrowRender for every arrow-like shape in
// items whose resolved endpoints are more than minArrowLength apart.
// Shapes with closer endpoints are omitted entirely.
func RenderArrows(items []model.Item) []ArrowRender {
	closed := geometry.CollectClosedShapes(items)
	var out []ArrowRender

	for _, it := range items {
		shape, ok := it.(*model.Shape)
		if !ok || !shape.Kind.IsArrowLike() {
			continue
		}

		start, end, attached := resolveEndpoints(shape, closed)
		dx := end.X - start.X
		dy := end.Y - start.Y
		if hypot(dx, dy) <= minArrowLength {
			continue
		}

		var path Path
		switch shape.Kind {
		case model.CurvedArrow:
			quad := geometry.SimpleControl(start, end)
			path = chooseCurvedPath(start, end, quad, attached, closed)
		default:
			path = Path{Kind: Line}
		}

		tx, ty := dx, dy
		switch path.Kind {
		case Quadratic:
			tx, ty = end.X-path.Control.X, end.Y-path.Control.Y
		case Cubic:
			tx, ty = end.X-path.C2.X, end.Y-path.C2.Y
		}
		headLeft, headRight := computeArrowhead(end, tx, ty, shape.Style.StrokeWidth)

		out = append(out, ArrowRender{
			ShapeID:   shape.ID,
			Style:     shape.Style,
			Start:     start,
			End:       end,
			Path:      path,
			HeadLeft:  headLeft,
			HeadRight: headRight,
		})
	}

	return out
}

// ArrowObstacleIDs returns the sorted-ascending ids of closed shapes
// that would be considered obstacles for the arrow-like shape with id
// arrowID: every closed-shape id minus the ids it is actually attached
// to. Non-arrow targets (including ids not found, or not arrow-like)
// return an empty slice.
func ArrowObstacleIDs(items []model.Item, arrowID uint64) []uint64 {
	closed := geometry.CollectClosedShapes(items)

	for _, it := range items {
		shape, ok := it.(*model.Shape)
		if !ok || shape.ID != arrowID {
			continue
		}
		if !shape.Kind.IsArrowLike() {
			return nil
		}
		_, _, attached := resolveEndpoints(shape, closed)

		out := make([]uint64, 0, len(closed))
		for _, c := range closed {
			if !containsID(attached, c.ID) {
				out = append(out, c.ID)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
		return out
	}
	return nil
}
