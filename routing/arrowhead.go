package routing

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/model"
)

// vecNorm returns the unit vector of (dx,dy) and true, or the zero
// vector and false if its length is at or below the zero-vector
// epsilon.
func vecNorm(dx, dy float32) (ux, uy float32, ok bool) {
	length := math32.Sqrt(dx*dx + dy*dy)
	if length <= 1e-6 {
		return 0, 0, false
	}
	return dx / length, dy / length, true
}

// computeArrowhead returns the two base points of the arrowhead at
// end, given the tangent direction the path arrives from and the
// shape's stroke width. If the tangent is degenerate (zero length),
// both base points collapse to end.
func computeArrowhead(end model.Point, tangentDX, tangentDY, strokeWidth float32) (left, right model.Point) {
	ux, uy, ok := vecNorm(tangentDX, tangentDY)
	if !ok {
		return end, end
	}
	headLength := math32.Max(strokeWidth*4, 10)
	headWidth := math32.Max(strokeWidth*3, 8)
	base := model.Point{X: end.X - ux*headLength, Y: end.Y - uy*headLength}
	px := -uy
	py := ux
	half := headWidth * 0.5
	left = model.Point{X: base.X + px*half, Y: base.Y + py*half}
	right = model.Point{X: base.X - px*half, Y: base.Y - py*half}
	return left, right
}
