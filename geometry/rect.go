// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides the axis-aligned rectangle math and
// closed-shape enumeration that the store's eraser and the routing
// engine's obstacle search build on.
package geometry

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/model"
)

// Rect is an axis-aligned rectangle, normalized so Min <= Max on both
// axes.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// FromPoints builds the rectangle spanned by two points, taking the
// componentwise min/max so the result does not depend on which point
// came first.
func FromPoints(a, b model.Point) Rect {
	return Rect{
		MinX: math32.Min(a.X, b.X),
		MinY: math32.Min(a.Y, b.Y),
		MaxX: math32.Max(a.X, b.X),
		MaxY: math32.Max(a.Y, b.Y),
	}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// Center returns the rectangle's midpoint.
func (r Rect) Center() model.Point {
	return model.Point{
		X: (r.MinX + r.MaxX) * 0.5,
		Y: (r.MinY + r.MaxY) * 0.5,
	}
}

// Contains reports whether p lies within the rectangle, inclusive of
// its boundary.
func (r Rect) Contains(p model.Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Inflate returns r expanded by dx on each side along X and dy on each
// side along Y. Negative values shrink the rectangle.
func (r Rect) Inflate(dx, dy float32) Rect {
	return Rect{
		MinX: r.MinX - dx,
		MinY: r.MinY - dy,
		MaxX: r.MaxX + dx,
		MaxY: r.MaxY + dy,
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math32.Min(r.MinX, o.MinX),
		MinY: math32.Min(r.MinY, o.MinY),
		MaxX: math32.Max(r.MaxX, o.MaxX),
		MaxY: math32.Max(r.MaxY, o.MaxY),
	}
}
