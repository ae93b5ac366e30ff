// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hittest implements the distance-to-primitive predicates the
// eraser uses to decide which items a probe point (with a radius)
// touches. Every predicate here is a deliberate approximation suited
// to interactive erasing, not a general nearest-point-on-shape solver.
package hittest

import (
	"github.com/chewxy/math32"

	"github.com/erezak/overlay-scribe/geometry"
	"github.com/erezak/overlay-scribe/model"
)

// epsilon guards against division by a zero-extent ellipse axis.
const epsilon = 1e-6

// Within reports whether item lies within radius of p, per the
// distance rule for its concrete kind (spec.md §4.2).
func Within(item model.Item, p model.Point, radius float32) bool {
	r2 := radius * radius
	switch v := item.(type) {
	case *model.Stroke:
		return strokeDistSq(v, p) <= r2
	case *model.Shape:
		return shapeDistSq(v, p) <= r2
	default:
		return false
	}
}

func strokeDistSq(s *model.Stroke, p model.Point) float32 {
	if len(s.Points) == 1 {
		return distSqPoint(s.Points[0], p)
	}
	best := float32(math32.MaxFloat32)
	for i := 0; i+1 < len(s.Points); i++ {
		d := distSqSegment(s.Points[i], s.Points[i+1], p)
		if d < best {
			best = d
		}
	}
	return best
}

func shapeDistSq(s *model.Shape, p model.Point) float32 {
	switch s.Kind {
	case model.Rectangle, model.RoundedRectangle:
		return rectOutlineDistSq(geometry.RectForShape(s), p)
	case model.Ellipse:
		return ellipseDistSq(geometry.RectForShape(s), s, p)
	case model.Arrow:
		return distSqSegment(s.Start, s.End, p)
	case model.CurvedArrow:
		return curvedArrowDistSq(s, p)
	default:
		return math32.MaxFloat32
	}
}

// rectOutlineDistSq is the minimum squared distance from p to the
// four outline segments of r. Fill is ignored for erase: only the
// stroked outline is hit-testable.
func rectOutlineDistSq(r geometry.Rect, p model.Point) float32 {
	tl := model.Point{X: r.MinX, Y: r.MinY}
	tr := model.Point{X: r.MaxX, Y: r.MinY}
	br := model.Point{X: r.MaxX, Y: r.MaxY}
	bl := model.Point{X: r.MinX, Y: r.MaxY}

	best := distSqSegment(tl, tr, p)
	if d := distSqSegment(tr, br, p); d < best {
		best = d
	}
	if d := distSqSegment(br, bl, p); d < best {
		best = d
	}
	if d := distSqSegment(bl, tl, p); d < best {
		best = d
	}
	return best
}

// ellipseDistSq approximates the distance from p to the ellipse
// outline derived from shape's bounding rectangle. This is a
// deliberate, closed-form approximation (not Euclidean distance to
// the ellipse): preserve the formula exactly, it is part of the
// visual contract.
func ellipseDistSq(r geometry.Rect, s *model.Shape, p model.Point) float32 {
	a := r.Width() * 0.5
	b := r.Height() * 0.5
	if a <= epsilon || b <= epsilon {
		return distSqSegment(s.Start, s.End, p)
	}
	c := r.Center()
	dx := p.X - c.X
	dy := p.Y - c.Y
	v := (dx*dx)/(a*a) + (dy*dy)/(b*b)
	min := a
	if b < min {
		min = b
	}
	approx := math32.Abs(v-1) * min
	return approx * approx
}

const curvedArrowSamples = 17

func curvedArrowDistSq(s *model.Shape, p model.Point) float32 {
	control := geometry.SimpleControl(s.Start, s.End)
	var pts [curvedArrowSamples]model.Point
	for i := 0; i < curvedArrowSamples; i++ {
		t := float32(i) / float32(curvedArrowSamples-1)
		pts[i] = geometry.PointAtQuadratic(s.Start, control, s.End, t)
	}
	best := distSqSegment(pts[0], pts[1], p)
	for i := 1; i+1 < curvedArrowSamples; i++ {
		if d := distSqSegment(pts[i], pts[i+1], p); d < best {
			best = d
		}
	}
	return best
}

func distSqPoint(a, b model.Point) float32 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// distSqSegment returns the minimum squared distance from p to the
// segment a-b.
func distSqSegment(a, b, p model.Point) float32 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq <= epsilon {
		return distSqPoint(a, p)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := model.Point{X: a.X + t*abx, Y: a.Y + t*aby}
	return distSqPoint(proj, p)
}
