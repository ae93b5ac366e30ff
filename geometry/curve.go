package geometry

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/model"
)

// SimpleControl computes the default quadratic control point for a
// curved arrow from start to end: the midpoint displaced along the
// perpendicular of the start->end direction, magnitude clamped to a
// fixed visual range. Both the eraser's curved-arrow hit sampler and
// the routing engine's default-curve/acceptance test use this exact
// construction.
func SimpleControl(start, end model.Point) model.Point {
	mid := model.Point{X: (start.X + end.X) * 0.5, Y: (start.Y + end.Y) * 0.5}
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math32.Hypot(dx, dy)
	if length <= 1e-3 {
		return mid
	}
	ux := dx / length
	uy := dy / length
	perpX := -uy
	perpY := ux
	magnitude := math32.Max(18, math32.Min(160, length*0.22))
	sign := float32(1)
	if dx*dy < 0 {
		sign = -1
	}
	return model.Point{
		X: mid.X + perpX*magnitude*sign,
		Y: mid.Y + perpY*magnitude*sign,
	}
}

// PointAtQuadratic evaluates the quadratic Bezier start-control-end at
// parameter t in [0,1].
func PointAtQuadratic(start, control, end model.Point, t float32) model.Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return model.Point{
		X: a*start.X + b*control.X + c*end.X,
		Y: a*start.Y + b*control.Y + c*end.Y,
	}
}

// PointAtCubic evaluates the cubic Bezier start-c1-c2-end at parameter
// t in [0,1].
func PointAtCubic(start, c1, c2, end model.Point, t float32) model.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return model.Point{
		X: a*start.X + b*c1.X + c*c2.X + d*end.X,
		Y: a*start.Y + b*c1.Y + c*c2.Y + d*end.Y,
	}
}
