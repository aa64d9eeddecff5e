// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package picogk runs user geometry tasks against the computational
// geometry kernel while driving a desktop viewer: it owns the
// process-wide singletons (library handle, run log, viewer), the
// fixed-cadence poll loop that advances viewer animations, and the
// cooperative shutdown protocol between the task and the app.
//
// A typical program hands its task to [Run] and polls [ContinueTask]
// inside long-running loops:
//
//	func main() {
//		cfg := picogk.NewConfig()
//		cfg.EndAppWithTask = true
//		err := picogk.Run(func() {
//			vw := errors.Must1(picogk.Viewer())
//			vw.AddAnimation(anim.New(spin, 2, anim.Repeat, anim.SineInOut))
//			for picogk.ContinueTask(false) {
//				// build geometry...
//			}
//		}, cfg)
//		...
//	}
package picogk

import (
	"github.com/leap71/PicoGK-sub001/kernel"
	"github.com/leap71/PicoGK-sub001/viewer"
)

// TheRuntime is the default [Runtime] that the package-level
// functions operate on; only one is ever in effect in a normal
// program.
var TheRuntime = NewRuntime()

// Run runs the given task on [TheRuntime]; see [Runtime.Run].
func Run(task func(), cfg *Config) error {
	return TheRuntime.Run(task, cfg)
}

// ContinueTask reports whether the current task should keep going;
// see [Runtime.ContinueTask].
func ContinueTask(appExitOnly bool) bool {
	return TheRuntime.ContinueTask(appExitOnly)
}

// EndTask requests that the current task stop; see [Runtime.EndTask].
func EndTask() { TheRuntime.EndTask() }

// CancelEndTask withdraws a previous [EndTask] request; see
// [Runtime.CancelEndTask].
func CancelEndTask() { TheRuntime.CancelEndTask() }

// Library returns the geometry library handle of the current run.
func Library() (*kernel.Library, error) {
	return TheRuntime.Library()
}

// Log returns the run log of the current run.
func Log() (Logger, error) {
	return TheRuntime.Log()
}

// Viewer returns the viewer of the current run.
func Viewer() (*viewer.Viewer, error) {
	return TheRuntime.Viewer()
}
