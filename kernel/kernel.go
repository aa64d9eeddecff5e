// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel manages the handle to the computational-geometry
// kernel. The kernel itself (voxel fields, Booleans, meshing) is an
// external collaborator; this package owns only the handle lifecycle
// and the global voxel resolution it is opened at.
package kernel

import (
	"sync"
	"time"

	"github.com/leap71/PicoGK-sub001/base/errors"
)

// Name is the name the library reports about itself.
const Name = "PicoGK Core"

// Version is the library version. It is set by a linker flag in
// release builds.
var Version = "dev"

// Library is an open handle to the geometry kernel. All geometry
// created through a library shares one global voxel size, fixed at
// open time. A Library is created by the task supervisor and closed
// by it during teardown; user code accesses it through the registry.
type Library struct {
	mu        sync.Mutex
	voxelSize float32
	opened    time.Time
	closed    bool
}

// New opens a library handle at the given voxel size in millimeters.
// The voxel size must be positive; it is the resolution of every
// voxel field created for the lifetime of the handle.
func New(voxelSize float32) (*Library, error) {
	if voxelSize <= 0 {
		return nil, errors.Errorf("kernel: invalid voxel size %gmm; must be positive", voxelSize)
	}
	return &Library{voxelSize: voxelSize, opened: time.Now()}, nil
}

// VoxelSize returns the global voxel size in millimeters.
func (lib *Library) VoxelSize() float32 {
	return lib.voxelSize
}

// Opened returns when the library handle was opened.
func (lib *Library) Opened() time.Time {
	return lib.opened
}

// Closed reports whether the handle has been closed.
func (lib *Library) Closed() bool {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	return lib.closed
}

// Close releases the library handle. It is idempotent.
func (lib *Library) Close() error {
	lib.mu.Lock()
	defer lib.mu.Unlock()
	lib.closed = true
	return nil
}
