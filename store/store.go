package store

import (
	"github.com/jinzhu/copier"

	"github.com/erezak/overlay-scribe/hittest"
	"github.com/erezak/overlay-scribe/model"
)

// Store holds the live item list and its undo/redo journals. It is
// the single mutable object the host mutates; every method is a
// short, synchronous, non-blocking operation (spec.md §5) — callers
// that share a Store across goroutines must guard it themselves (see
// package session for a mutex-wrapped boundary object).
type Store struct {
	items  []model.Item
	undo   []edit
	redo   []edit
	nextID uint64
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// BeginStroke allocates a fresh id and returns a new single-point
// stroke. The id is consumed immediately; if the returned stroke is
// never committed, the document is left unchanged but the id is not
// reused.
func (s *Store) BeginStroke(color model.Color, width float32, start model.Point) *model.Stroke {
	id := s.allocID()
	return &model.Stroke{
		ID:     id,
		Color:  color,
		Width:  width,
		Points: []model.Point{start},
	}
}

// CommitStroke appends stroke as a new item and journals it as a
// single undoable AddItem.
func (s *Store) CommitStroke(stroke *model.Stroke) {
	s.apply(addItemEdit(stroke.Clone()))
}

// BeginShape allocates a fresh id and returns a new shape with
// End == Start, no text, and default (center/middle) alignment.
func (s *Store) BeginShape(kind model.ShapeKind, style model.ShapeStyle, start model.Point) *model.Shape {
	id := s.allocID()
	return &model.Shape{
		ID:         id,
		Kind:       kind,
		Style:      style,
		Start:      start,
		End:        start,
		TextAlignH: model.AlignCenter,
		TextAlignV: model.AlignMiddle,
	}
}

// CommitShape journals shape as a single undoable step. If an item
// with the same id is already present (and is a Shape), the commit
// replaces it in place (ReplaceItem) — this is what makes a text edit
// or a geometry drag a single undo step per commit. Otherwise the
// shape is appended (AddItem).
func (s *Store) CommitShape(shape *model.Shape) {
	for i, it := range s.items {
		if existing, ok := it.(*model.Shape); ok && existing.ID == shape.ID {
			s.apply(replaceItemEdit(i, existing.Clone(), shape.Clone()))
			return
		}
	}
	s.apply(addItemEdit(shape.Clone()))
}

// EraseAt removes every item whose distance to p is within radius. It
// reports whether anything was removed; if nothing was, no journal
// entry is created, matching the "no-op edits don't pollute undo"
// contract of spec.md §4.1.
func (s *Store) EraseAt(p model.Point, radius float32) bool {
	kept := make([]model.Item, 0, len(s.items))
	removed := false
	for _, it := range s.items {
		if hittest.Within(it, p, radius) {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	if !removed {
		return false
	}
	before := model.CloneItems(s.items)
	s.apply(replaceAllEdit(before, kept))
	return true
}

// ClearAll removes every item, journaled as a single undoable
// ReplaceAll.
func (s *Store) ClearAll() {
	before := model.CloneItems(s.items)
	s.apply(replaceAllEdit(before, nil))
}

// CanUndo reports whether Undo would succeed.
func (s *Store) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (s *Store) CanRedo() bool { return len(s.redo) > 0 }

// Undo reverses the most recent commit, pushing its inverse onto the
// redo journal. It returns ErrCannotUndo if the undo journal is empty.
func (s *Store) Undo() error {
	if len(s.undo) == 0 {
		return ErrCannotUndo
	}
	e := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	inverse := s.unapplyNoHistory(e)
	s.redo = append(s.redo, inverse)
	return nil
}

// Redo re-applies the most recently undone commit, pushing its
// inverse onto the undo journal. It returns ErrCannotRedo if the redo
// journal is empty.
func (s *Store) Redo() error {
	if len(s.redo) == 0 {
		return ErrCannotRedo
	}
	e := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	inverse := s.unapplyNoHistory(e)
	s.undo = append(s.undo, inverse)
	return nil
}

// Items returns the live item list. Callers must not mutate the
// returned slice or its elements; use Document for an owned snapshot.
func (s *Store) Items() []model.Item { return s.items }

// Document returns a deep-copied snapshot of the store's current
// state at the current schema version.
func (s *Store) Document() model.Document {
	return model.Document{
		Version: model.CurrentVersion,
		Items:   cloneItemsDeep(s.items),
	}
}

// LoadDocument replaces the store's items with doc's, clears both
// journals, and sets the id allocator strictly past the highest id
// present (0 if doc is empty), so subsequent BeginStroke/BeginShape
// calls never collide with a loaded id.
func (s *Store) LoadDocument(doc model.Document) {
	s.items = model.CloneItems(doc.Items)
	s.undo = nil
	s.redo = nil
	var maxID uint64
	for _, it := range s.items {
		if id := model.ID(it); id > maxID {
			maxID = id
		}
	}
	if len(s.items) == 0 {
		s.nextID = 0
	} else {
		s.nextID = maxID + 1
	}
}

func (s *Store) allocID() uint64 {
	id := s.nextID
	s.nextID++
	return id
}

// apply commits e: it clears the redo journal (any new commit after
// an undo invalidates the redo history), applies e to the live items,
// and pushes e onto the undo journal.
func (s *Store) apply(e edit) {
	s.redo = nil
	s.items = applyEdit(s.items, e)
	s.undo = append(s.undo, e)
}

// unapplyNoHistory applies the inverse of e to the live items and
// returns the edit that undoes that inverse (i.e. redoes e), without
// touching either journal itself — the caller pushes the result.
func (s *Store) unapplyNoHistory(e edit) edit {
	items, inverse := unapplyEdit(s.items, e)
	s.items = items
	return inverse
}

// cloneItemsDeep additionally round-trips the slice through
// github.com/jinzhu/copier, matching the defensive copy-at-the-boundary
// idiom the teacher uses copier for: model.CloneItems already deep
// copies each item's own fields, and copier here guards against a
// accidental shared backing array if a future Item implementation
// forgets to deep-copy a nested slice or pointer field.
func cloneItemsDeep(items []model.Item) []model.Item {
	cloned := model.CloneItems(items)
	out := make([]model.Item, len(cloned))
	for i, it := range cloned {
		switch v := it.(type) {
		case *model.Stroke:
			var c model.Stroke
			_ = copier.CopyWithOption(&c, v, copier.Option{DeepCopy: true})
			out[i] = &c
		case *model.Shape:
			var c model.Shape
			_ = copier.CopyWithOption(&c, v, copier.Option{DeepCopy: true})
			out[i] = &c
		default:
			out[i] = it
		}
	}
	return out
}
