// Copyright (c) 2024, Overlay Scribe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errorsx provides a small set of error-logging helpers, in
// the style of cogentcore.org/core/base/errors: the core never aborts
// on a recoverable error, but call sites that convert an error into a
// zero value or a boolean still want it logged once, with caller
// context, rather than silently dropped.
package errorsx

import (
	"log/slog"
	"runtime"
	"strconv"
)

// Log logs err, if non-nil, with its caller's file and line, and
// returns it unchanged. Intended usage:
//
//	return errorsx.Log(s.LoadJSON(data))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs err, if non-nil, and returns v. Intended usage:
//
//	doc := errorsx.Log1(store.UnmarshalDocument(data))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// CallerInfo returns the function name, file, and line of the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
