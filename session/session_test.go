package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erezak/overlay-scribe/model"
)

func TestDocumentBasicFlow(t *testing.T) {
	d := New()
	stroke := d.BeginStroke(model.Color{R: 255, A: 255}, 2, model.Point{X: 0, Y: 0})
	d.CommitStroke(stroke)
	assert.Len(t, d.Items(), 1)
	assert.True(t, d.CanUndo())

	assert.True(t, d.Undo())
	assert.False(t, d.CanUndo())
	assert.True(t, d.CanRedo())
	assert.True(t, d.Redo())
	assert.Len(t, d.Items(), 1)
}

func TestDocumentUndoRedoFalseOnEmptyJournal(t *testing.T) {
	d := New()
	assert.False(t, d.Undo())
	assert.False(t, d.Redo())
}

func TestDocumentLoadJSONRoundTrip(t *testing.T) {
	d := New()
	shape := d.BeginShape(model.Rectangle, model.ShapeStyle{}, model.Point{X: 0, Y: 0})
	shape.End = model.Point{X: 10, Y: 10}
	d.CommitShape(shape)

	data := d.ToJSON()

	other := New()
	assert.True(t, other.LoadJSON(data))
	assert.Len(t, other.Items(), 1)
}

func TestDocumentLoadJSONFalseOnGarbage(t *testing.T) {
	d := New()
	d.CommitStroke(d.BeginStroke(model.Color{}, 1, model.Point{}))
	assert.False(t, d.LoadJSON("not json"))
	assert.Len(t, d.Items(), 1) // unchanged
}

func TestDocumentArrowRenders(t *testing.T) {
	d := New()
	arrow := d.BeginShape(model.Arrow, model.ShapeStyle{}, model.Point{X: 0, Y: 0})
	arrow.End = model.Point{X: 50, Y: 0}
	d.CommitShape(arrow)
	assert.Len(t, d.ArrowRenders(), 1)
}
