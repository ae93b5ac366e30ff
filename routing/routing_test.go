package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/internal/tolassert"
	"github.com/erezak/overlay-scribe/model"
)

func rect(id uint64, x0, y0, x1, y1 float32) *model.Shape {
	return &model.Shape{ID: id, Kind: model.Rectangle, Start: model.Point{X: x0, Y: y0}, End: model.Point{X: x1, Y: y1}}
}

func u64(v uint64) *uint64 { return &v }

// S5. Arrow endpoint snapping.
func TestArrowEndpointSnapping(t *testing.T) {
	a := rect(1, 0, 0, 100, 100)
	b := &model.Shape{
		ID: 2, Kind: model.Arrow,
		Start: model.Point{X: 200, Y: 50}, End: model.Point{X: 50, Y: 50},
		EndAttachID: u64(1),
	}
	renders := RenderArrows([]model.Item{a, b})
	require.Len(t, renders, 1)
	tolassert.PointTol(t, "end", 100, 50, renders[0].End.X, renders[0].End.Y, 1e-3)
}

// S6. Curved arrow bypasses obstacle.
func TestCurvedArrowBypassesObstacle(t *testing.T) {
	o := rect(1, 60, 30, 140, 70) // centered at (100,50), extents (40,20)
	c := &model.Shape{ID: 2, Kind: model.CurvedArrow, Start: model.Point{X: 0, Y: 50}, End: model.Point{X: 200, Y: 50}}

	renders := RenderArrows([]model.Item{o, c})
	require.Len(t, renders, 1)
	r := renders[0]

	obstacleRect := geometry.RectForShape(o)
	for i := 0; i <= 800; i++ {
		tt := float32(i) / 800
		var p model.Point
		switch r.Path.Kind {
		case Quadratic:
			p = geometry.PointAtQuadratic(r.Start, r.Path.Control, r.End, tt)
		case Cubic:
			p = geometry.PointAtCubic(r.Start, r.Path.C1, r.Path.C2, r.End, tt)
		default:
			t.Fatalf("expected curved path, got Line")
		}
		assert.False(t, obstacleRect.Contains(p), "sample %d at t=%v lies inside obstacle", i, tt)
	}
}

func TestNoAttachmentResolvesToShapeEndpoints(t *testing.T) {
	a := &model.Shape{ID: 1, Kind: model.Arrow, Start: model.Point{X: 1, Y: 2}, End: model.Point{X: 10, Y: 20}}
	renders := RenderArrows([]model.Item{a})
	require.Len(t, renders, 1)
	assert.Equal(t, model.Point{X: 1, Y: 2}, renders[0].Start)
	assert.Equal(t, model.Point{X: 10, Y: 20}, renders[0].End)
}

func TestDegenerateArrowsOmitted(t *testing.T) {
	a := &model.Shape{ID: 1, Kind: model.Arrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 0.1, Y: 0}}
	renders := RenderArrows([]model.Item{a})
	assert.Len(t, renders, 0)
}

func TestEachArrowRenderHasMatchingShapeID(t *testing.T) {
	a := &model.Shape{ID: 7, Kind: model.Arrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 50, Y: 0}}
	renders := RenderArrows([]model.Item{a})
	require.Len(t, renders, 1)
	assert.Equal(t, uint64(7), renders[0].ShapeID)
}

func TestDefaultQuadraticAcceptedWhenNoObstacles(t *testing.T) {
	c := &model.Shape{ID: 1, Kind: model.CurvedArrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 100, Y: 0}}
	renders := RenderArrows([]model.Item{c})
	require.Len(t, renders, 1)
	require.Equal(t, Quadratic, renders[0].Path.Kind)
	want := geometry.SimpleControl(c.Start, c.End)
	assert.Equal(t, want, renders[0].Path.Control)
}

func TestArrowObstacleIDsSortedAndExcludesAttached(t *testing.T) {
	a := rect(1, 0, 0, 10, 10)
	b := rect(2, 20, 0, 30, 10)
	c := rect(3, 40, 0, 50, 10)
	arrow := &model.Shape{ID: 4, Kind: model.CurvedArrow, Start: model.Point{X: -5, Y: 5}, End: model.Point{X: 25, Y: 5}, EndAttachID: u64(2)}

	ids := ArrowObstacleIDs([]model.Item{a, b, c, arrow}, 4)
	assert.Equal(t, []uint64{1, 3}, ids)
}

func TestArrowObstacleIDsEmptyForNonArrow(t *testing.T) {
	a := rect(1, 0, 0, 10, 10)
	assert.Empty(t, ArrowObstacleIDs([]model.Item{a}, 1))
	assert.Empty(t, ArrowObstacleIDs([]model.Item{a}, 999))
}

func TestRectangleAttachmentSnapsToRightEdge(t *testing.T) {
	target := rect(1, -50, -50, 50, 50) // center (0,0), half-extents (50,50)
	arrow := &model.Shape{
		ID: 2, Kind: model.Arrow,
		Start:         model.Point{X: 200, Y: 0},
		End:           model.Point{X: 150, Y: 0}, // C.x + hx*k, k=3>1
		StartAttachID: u64(1),
	}
	renders := RenderArrows([]model.Item{target, arrow})
	require.Len(t, renders, 1)
	tolassert.PointTol(t, "start", 50, 0, renders[0].Start.X, renders[0].Start.Y, 1e-3)
}

func TestDeterministicAcrossRepeatedCalls(t *testing.T) {
	items := []model.Item{
		rect(1, 60, 30, 140, 70),
		rect(2, 60, -70, 140, -30),
		&model.Shape{ID: 3, Kind: model.CurvedArrow, Start: model.Point{X: 0, Y: 0}, End: model.Point{X: 200, Y: 0}},
	}
	first := RenderArrows(items)
	second := RenderArrows(items)
	assert.Equal(t, first, second)
}
