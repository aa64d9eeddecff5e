// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"runtime"
	"strings"
)

// Stack returns the stack trace up to the caller of the function
// that called Stack, formatted as "function (file:line)" strings.
func Stack() []string {
	callers := make([]uintptr, 10)
	n := runtime.Callers(4, callers)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(callers[:n])
	var res []string
	for {
		frame, more := frames.Next()
		// stop unwinding once we enter the runtime or testing packages;
		// only program frames are informative
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			break
		}
		res = append(res, fmt.Sprintf("%s (%s:%d)", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return res
}
