package hittest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

func TestStrokeSinglePoint(t *testing.T) {
	s := &model.Stroke{Points: []model.Point{{X: 0, Y: 0}}}
	assert.True(t, Within(s, model.Point{X: 3, Y: 4}, 5))
	assert.False(t, Within(s, model.Point{X: 3, Y: 4}, 4))
}

func TestStrokeSegments(t *testing.T) {
	s := &model.Stroke{Points: []model.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	assert.True(t, Within(s, model.Point{X: 5, Y: 1}, 1))
	assert.False(t, Within(s, model.Point{X: 5, Y: 5}, 1))
}

func TestRectangleOutlineIgnoresFill(t *testing.T) {
	s := &model.Shape{Kind: model.Rectangle, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 100, Y: 100}}
	assert.True(t, Within(s, model.Point{X: 50, Y: 0}, 1))
	assert.False(t, Within(s, model.Point{X: 50, Y: 50}, 1))
}

func TestEllipseApproximationFormula(t *testing.T) {
	s := &model.Shape{Kind: model.Ellipse, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 100, Y: 50}}
	r := geometry.RectForShape(s)
	a := r.Width() * 0.5
	center := r.Center()
	p := model.Point{X: center.X + a, Y: center.Y}
	assert.InDelta(t, float32(0), ellipseDistSq(r, s, p), 1e-3)
}

func TestEllipseDegenerateFallsBackToSegment(t *testing.T) {
	s := &model.Shape{Kind: model.Ellipse, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 100, Y: 0}}
	assert.True(t, Within(s, model.Point{X: 50, Y: 0}, 0.5))
}

func TestArrowSegment(t *testing.T) {
	s := &model.Shape{Kind: model.Arrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 10, Y: 0}}
	assert.True(t, Within(s, model.Point{X: 5, Y: 0.5}, 1))
}

func TestCurvedArrowSamplesQuadratic(t *testing.T) {
	s := &model.Shape{Kind: model.CurvedArrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 100, Y: 0}}
	control := geometry.SimpleControl(s.Start, s.End)
	mid := geometry.PointAtQuadratic(s.Start, control, s.End, 0.5)
	assert.True(t, Within(s, mid, 1))
}
