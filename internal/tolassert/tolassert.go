// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides tolerance-based float assertions for
// tests, in the style of cogentcore.org/core/glop/tolassert. Routing
// geometry is float32 arithmetic; exact equality checks are brittle,
// so tests compare within a small tolerance instead.
package tolassert

import (
	"github.com/chewxy/math32"
)

// errorfer is the subset of *testing.T used here, so tests can pass
// either *testing.T or a mock.
type errorfer interface {
	Errorf(format string, args ...any)
}

// EqualTol reports whether want and got are within tol of each other,
// failing t with a descriptive message if not.
func EqualTol(t errorfer, want, got, tol float32) bool {
	if math32.Abs(want-got) > tol {
		t.Errorf("not within tolerance %v: want %v, got %v", tol, want, got)
		return false
	}
	return true
}

// PointTol reports whether want and got points are within tol on each
// axis, failing t with a descriptive message if not.
func PointTol(t errorfer, name string, wantX, wantY, gotX, gotY, tol float32) bool {
	ok := true
	if math32.Abs(wantX-gotX) > tol {
		t.Errorf("%s.x not within tolerance %v: want %v, got %v", name, tol, wantX, gotX)
		ok = false
	}
	if math32.Abs(wantY-gotY) > tol {
		t.Errorf("%s.y not within tolerance %v: want %v, got %v", name, tol, wantY, gotY)
		ok = false
	}
	return ok
}
