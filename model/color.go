// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model defines the value types that make up a document:
// colors, points, strokes, shapes, items, and the document itself.
// Everything here is a plain value type with no behavior beyond
// what the store and routing packages need from it.
package model

// Color is a straight (non-premultiplied) 8-bit-per-channel RGBA color.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}
