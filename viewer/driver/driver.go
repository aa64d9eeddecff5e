// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the viewer window backend for the current
// platform at build time. The default is the glfw desktop backend;
// building with the "offscreen" tag selects the headless backend.
package driver

import "github.com/leap71/PicoGK-sub001/viewer"

// New opens a window backend with the given title and size in
// pixels, using the driver selected at build time.
func New(title string, width, height int) (viewer.Backend, error) {
	return newBackend(title, width, height)
}
