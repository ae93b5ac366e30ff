// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package routing computes, for every arrow-like shape in a document,
// the resolved endpoints, path geometry, and arrowhead base points a
// host renderer needs to draw it: straight arrows get a line, curved
// arrows get either the default quadratic or a clearance-seeking
// cubic, chosen by sampling candidate paths against obstacle
// geometry.
package routing

import "github.com/erezak/overlay-scribe/model"

// PathKind discriminates an ArrowRender's Path.
type PathKind int

const (
	// Line is a straight segment from Start to End.
	Line PathKind = iota
	// Quadratic is a single-control-point Bezier from Start to End.
	Quadratic
	// Cubic is a two-control-point Bezier from Start to End.
	Cubic
)

// Path is the geometry a renderer draws between an arrow's resolved
// Start and End. Only the fields relevant to Kind are meaningful.
type Path struct {
	Kind    PathKind
	Control model.Point // Quadratic
	C1, C2  model.Point // Cubic
}

// ArrowRender is everything a host renderer needs to draw one
// arrow-like shape: its resolved endpoints (after attachment
// resolution), its path geometry, and its arrowhead's two base
// points.
type ArrowRender struct {
	ShapeID   uint64
	Style     model.ShapeStyle
	Start     model.Point
	End       model.Point
	Path      Path
	HeadLeft  model.Point
	HeadRight model.Point
}
