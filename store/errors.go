// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store implements the document's item list and its edit
// journal: begin/commit for strokes and shapes, erase, clear, undo,
// redo, and versioned JSON load/save.
package store

import "errors"

// Sentinel errors returned by Store operations. Callers that only
// need a boolean (the typical host binding) should compare with
// errors.Is.
var (
	// ErrCannotUndo is returned by Undo when the undo journal is empty.
	ErrCannotUndo = errors.New("cannot undo: journal is empty")
	// ErrCannotRedo is returned by Redo when the redo journal is empty.
	ErrCannotRedo = errors.New("cannot redo: journal is empty")
	// ErrSerialization wraps a JSON encode/decode failure.
	ErrSerialization = errors.New("serialization error")
)
