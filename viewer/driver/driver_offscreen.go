// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import (
	"github.com/leap71/PicoGK-sub001/viewer"
	"github.com/leap71/PicoGK-sub001/viewer/driver/offscreen"
)

func newBackend(title string, width, height int) (viewer.Backend, error) {
	return offscreen.New(title, width, height), nil
}
