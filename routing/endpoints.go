package routing

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

// boundaryEpsilon guards the direction-vector length checks used when
// resolving an endpoint against a shape's center.
const boundaryEpsilon = 1e-6

// intersectRect intersects the ray from rect's center in direction
// (dx,dy) with rect's boundary.
func intersectRect(rect geometry.Rect, dx, dy float32) model.Point {
	center := rect.Center()
	hx := rect.Width() * 0.5
	hy := rect.Height() * 0.5
	adx := math32.Max(math32.Abs(dx), 1e-6)
	ady := math32.Max(math32.Abs(dy), 1e-6)
	sx := hx / adx
	sy := hy / ady
	s := math32.Min(sx, sy)
	return model.Point{X: center.X + dx*s, Y: center.Y + dy*s}
}

// intersectEllipse intersects the ray from rect's center in direction
// (dx,dy) with the ellipse inscribed in rect.
func intersectEllipse(rect geometry.Rect, dx, dy float32) model.Point {
	center := rect.Center()
	rx := math32.Max(rect.Width()*0.5, 1e-6)
	ry := math32.Max(rect.Height()*0.5, 1e-6)
	sx := math32.Max(math32.Abs(dx)/rx, 1e-6)
	sy := math32.Max(math32.Abs(dy)/ry, 1e-6)
	s := math32.Max(sx, sy)
	return model.Point{X: center.X + dx/s, Y: center.Y + dy/s}
}

// intersectBoundary dispatches to the rect or ellipse boundary
// intersection for target's kind.
func intersectBoundary(target geometry.ClosedShapeHit, dx, dy float32) model.Point {
	if target.Kind == geometry.ClosedEllipse {
		return intersectEllipse(target.Rect, dx, dy)
	}
	return intersectRect(target.Rect, dx, dy)
}

func pointFromUV(rect geometry.Rect, uv model.Point) model.Point {
	return model.Point{
		X: rect.MinX + model.Clamp01(uv.X)*rect.Width(),
		Y: rect.MinY + model.Clamp01(uv.Y)*rect.Height(),
	}
}

// anchorPointUV resolves an endpoint pinned to target at a normalized
// UV position within its rectangle: a ray cast from target's center
// through that local point, intersected with target's boundary. If
// the local point coincides with the center, the center itself is
// used (a zero-length ray has no direction to intersect with).
func anchorPointUV(target geometry.ClosedShapeHit, uv model.Point) model.Point {
	center := target.Rect.Center()
	local := pointFromUV(target.Rect, uv)
	dx := local.X - center.X
	dy := local.Y - center.Y
	if dx*dx+dy*dy <= boundaryEpsilon {
		return center
	}
	return intersectBoundary(target, dx, dy)
}

// findClosed returns the closed shape with the given id among closed,
// or false if none matches (an attachment id that no longer resolves
// to a present closed shape is treated as absent).
func findClosed(closed []geometry.ClosedShapeHit, id uint64) (geometry.ClosedShapeHit, bool) {
	for _, c := range closed {
		if c.ID == id {
			return c, true
		}
	}
	return geometry.ClosedShapeHit{}, false
}

// resolveEndpoints computes shape's resolved start/end, honoring any
// attachment, and the deduplicated (first-seen order) list of ids that
// were actually attached to.
func resolveEndpoints(shape *model.Shape, closed []geometry.ClosedShapeHit) (start, end model.Point, attached []uint64) {
	start = shape.Start
	end = shape.End

	if shape.StartAttachID != nil {
		if target, ok := findClosed(closed, *shape.StartAttachID); ok {
			attached = appendUnique(attached, target.ID)
			if shape.StartAttachUV != nil {
				start = anchorPointUV(target, *shape.StartAttachUV)
			} else {
				c := target.Rect.Center()
				start = intersectBoundary(target, end.X-c.X, end.Y-c.Y)
			}
		}
	}

	if shape.EndAttachID != nil {
		if target, ok := findClosed(closed, *shape.EndAttachID); ok {
			attached = appendUnique(attached, target.ID)
			if shape.EndAttachUV != nil {
				end = anchorPointUV(target, *shape.EndAttachUV)
			} else {
				c := target.Rect.Center()
				end = intersectBoundary(target, start.X-c.X, start.Y-c.Y)
			}
		}
	}

	return start, end, attached
}

func appendUnique(ids []uint64, id uint64) []uint64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
