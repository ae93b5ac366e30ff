// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session provides a thread-safe boundary object wrapping a
// store.Store, the Go analogue of the original Rust core's FFI-facing
// `CoreDocument` (a `Mutex<StrokeStore>`): every operation is short
// and never blocks on I/O, so a single coarse mutex around the whole
// document is sufficient for a host that shares it across goroutines
// (spec.md §5). Undo/Redo/LoadJSON surface success as a boolean, and
// ToJSON degrades to the empty-document encoding on failure, matching
// the boolean-and-default-on-error shape host bindings typically want
// at a language boundary.
package session

import (
	"sync"

	"github.com/erezak/overlay-scribe/errorsx"
	"github.com/erezak/overlay-scribe/model"
	"github.com/erezak/overlay-scribe/routing"
	"github.com/erezak/overlay-scribe/store"
)

// Document is a mutual-exclusion wrapper around a store.Store,
// suitable for sharing across goroutines in a host that embeds this
// core.
type Document struct {
	mu sync.Mutex
	st *store.Store
}

// New returns an empty Document.
func New() *Document {
	return &Document{st: store.New()}
}

// Items returns a snapshot of the document's current items.
func (d *Document) Items() []model.Item {
	d.mu.Lock()
	defer d.mu.Unlock()
	return model.CloneItems(d.st.Items())
}

// ArrowRenders computes the current arrow routing for every
// arrow-like shape in the document.
func (d *Document) ArrowRenders() []routing.ArrowRender {
	d.mu.Lock()
	defer d.mu.Unlock()
	return routing.RenderArrows(d.st.Items())
}

// BeginStroke allocates a new stroke id under the document's lock.
func (d *Document) BeginStroke(color model.Color, width float32, start model.Point) *model.Stroke {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.BeginStroke(color, width, start)
}

// CommitStroke commits stroke as a new item.
func (d *Document) CommitStroke(stroke *model.Stroke) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.CommitStroke(stroke)
}

// BeginShape allocates a new shape id under the document's lock.
func (d *Document) BeginShape(kind model.ShapeKind, style model.ShapeStyle, start model.Point) *model.Shape {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.BeginShape(kind, style, start)
}

// CommitShape commits shape, updating in place if its id is already
// present.
func (d *Document) CommitShape(shape *model.Shape) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.CommitShape(shape)
}

// EraseAt removes every item within radius of p, reporting whether
// anything was removed.
func (d *Document) EraseAt(p model.Point, radius float32) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.EraseAt(p, radius)
}

// ClearAll removes every item.
func (d *Document) ClearAll() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.st.ClearAll()
}

// Undo reverses the most recent commit, reporting success.
func (d *Document) Undo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.Undo() == nil
}

// Redo re-applies the most recently undone commit, reporting success.
func (d *Document) Redo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.Redo() == nil
}

// CanUndo reports whether Undo would succeed.
func (d *Document) CanUndo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.CanUndo()
}

// CanRedo reports whether Redo would succeed.
func (d *Document) CanRedo() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.CanRedo()
}

// emptyDocumentJSON is the encoding ToJSON falls back to if the live
// state somehow fails to serialize.
const emptyDocumentJSON = `{"version":2,"items":[]}`

// ToJSON encodes the document's current state. On the (unexpected)
// event of an encode failure, it logs the error and returns the
// empty-document encoding rather than an invalid or partial string.
func (d *Document) ToJSON() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := d.st.ToJSON()
	if err != nil {
		errorsx.Log(err)
		return emptyDocumentJSON
	}
	return data
}

// LoadJSON replaces the document's state with data's, reporting
// whether it could be decoded. On failure, the document is left
// unchanged.
func (d *Document) LoadJSON(data string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.st.LoadJSON(data) == nil
}
