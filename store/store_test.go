package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erezak/overlay-scribe/model"
)

func red() model.Color { return model.Color{R: 255, A: 255} }

// S1. Undo/redo single stroke.
func TestUndoRedoSingleStroke(t *testing.T) {
	s := New()
	stroke := s.BeginStroke(red(), 3, model.Point{X: 1, Y: 2})
	s.CommitStroke(stroke)

	assert.Len(t, s.Items(), 1)
	assert.True(t, s.CanUndo())

	require.NoError(t, s.Undo())
	assert.Len(t, s.Items(), 0)
	assert.True(t, s.CanRedo())

	require.NoError(t, s.Redo())
	require.Len(t, s.Items(), 1)
	assert.Equal(t, stroke.ID, model.ID(s.Items()[0]))
}

// S2. Clear-all undoable.
func TestClearAllUndoable(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		stroke := s.BeginStroke(red(), 2, model.Point{X: float32(i)})
		s.CommitStroke(stroke)
	}
	assert.Len(t, s.Items(), 3)

	s.ClearAll()
	assert.Len(t, s.Items(), 0)

	require.NoError(t, s.Undo())
	assert.Len(t, s.Items(), 3)

	require.NoError(t, s.Redo())
	assert.Len(t, s.Items(), 0)
}

// S3. v1 JSON upgrade.
func TestV1JSONUpgrade(t *testing.T) {
	const v1 = `{"version":1,"strokes":[{"id":7,"color":{"r":255,"g":0,"b":0,"a":255},"width":4,"points":[{"x":1,"y":2}]}]}`
	doc, err := UnmarshalDocument(v1)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, model.CurrentVersion, doc.Version)
	stroke, ok := doc.Items[0].(*model.Stroke)
	require.True(t, ok)
	assert.Equal(t, uint64(7), stroke.ID)
}

// S4. Eraser removes shape and is undoable.
func TestEraseRemovesShapeAndIsUndoable(t *testing.T) {
	s := New()
	shape := s.BeginShape(model.Rectangle, model.ShapeStyle{}, model.Point{X: 10, Y: 10})
	shape.End = model.Point{X: 50, Y: 50}
	s.CommitShape(shape)

	assert.True(t, s.EraseAt(model.Point{X: 10, Y: 10}, 10))
	assert.Len(t, s.Items(), 0)

	require.NoError(t, s.Undo())
	assert.Len(t, s.Items(), 1)
}

func TestEraseNoHitMakesNoJournalEntry(t *testing.T) {
	s := New()
	shape := s.BeginShape(model.Rectangle, model.ShapeStyle{}, model.Point{X: 10, Y: 10})
	shape.End = model.Point{X: 50, Y: 50}
	s.CommitShape(shape)

	assert.False(t, s.EraseAt(model.Point{X: 1000, Y: 1000}, 1))
	assert.Len(t, s.Items(), 1)
	assert.False(t, s.CanUndo())
}

func TestCommitShapeUpdatesInPlace(t *testing.T) {
	s := New()
	shape := s.BeginShape(model.Rectangle, model.ShapeStyle{}, model.Point{X: 0, Y: 0})
	s.CommitShape(shape)
	assert.Len(t, s.Items(), 1)

	shape.Text = "hello"
	s.CommitShape(shape)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "hello", s.Items()[0].(*model.Shape).Text)

	require.NoError(t, s.Undo())
	assert.Equal(t, "", s.Items()[0].(*model.Shape).Text)
}

func TestCommitShapeFreshIDAppends(t *testing.T) {
	s := New()
	a := s.BeginShape(model.Rectangle, model.ShapeStyle{}, model.Point{})
	s.CommitShape(a)
	b := s.BeginShape(model.Ellipse, model.ShapeStyle{}, model.Point{})
	s.CommitShape(b)
	assert.Len(t, s.Items(), 2)
}

func TestUndoRedoErrorsOnEmptyJournal(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Undo(), ErrCannotUndo)
	assert.ErrorIs(t, s.Redo(), ErrCannotRedo)
}

func TestNewCommitClearsRedoJournal(t *testing.T) {
	s := New()
	s.CommitStroke(s.BeginStroke(red(), 1, model.Point{}))
	require.NoError(t, s.Undo())
	assert.True(t, s.CanRedo())

	s.CommitStroke(s.BeginStroke(red(), 1, model.Point{X: 5}))
	assert.False(t, s.CanRedo())
}

func TestLoadDocumentSetsNextIDPastMax(t *testing.T) {
	s := New()
	s.LoadDocument(model.Document{
		Version: model.CurrentVersion,
		Items: []model.Item{
			&model.Stroke{ID: 3, Points: []model.Point{{}}},
			&model.Shape{ID: 9, Kind: model.Rectangle},
		},
	})
	stroke := s.BeginStroke(red(), 1, model.Point{})
	assert.Equal(t, uint64(10), stroke.ID)
	assert.False(t, s.CanUndo())
	assert.False(t, s.CanRedo())
}

func TestLoadDocumentEmptyResetsNextIDToZero(t *testing.T) {
	s := New()
	s.CommitStroke(s.BeginStroke(red(), 1, model.Point{}))
	s.LoadDocument(model.Document{Version: model.CurrentVersion})
	stroke := s.BeginStroke(red(), 1, model.Point{})
	assert.Equal(t, uint64(0), stroke.ID)
}

func TestToJSONRoundTrip(t *testing.T) {
	s := New()
	s.CommitStroke(s.BeginStroke(red(), 3, model.Point{X: 1, Y: 2}))
	shape := s.BeginShape(model.Rectangle, model.ShapeStyle{StrokeWidth: 2}, model.Point{X: 0, Y: 0})
	shape.End = model.Point{X: 10, Y: 10}
	s.CommitShape(shape)

	data, err := s.ToJSON()
	require.NoError(t, err)

	other := New()
	require.NoError(t, other.LoadJSON(data))
	assert.Len(t, other.Items(), 2)
}

func TestUnmarshalDocumentRejectsGarbage(t *testing.T) {
	_, err := UnmarshalDocument("not json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSerialization))
}
