// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer implements the desktop viewer front-end boundary:
// a window backend that is polled for UI events, the animation
// queue the poll loop pulses, and the lighting configuration.
// Rendering itself happens in the window backend and the geometry
// kernel; this package only coordinates them.
package viewer

import (
	"sync"

	"github.com/leap71/PicoGK-sub001/anim"
	"github.com/leap71/PicoGK-sub001/base/errors"
)

// Backend is the platform window a [Viewer] drives. Implementations
// live in the driver packages; the offscreen driver is used for
// testing, the desktop driver for real windows.
type Backend interface {

	// Poll processes pending UI events for the window, returning
	// false once the window has been closed by the user.
	Poll() bool

	// SetTitle sets the window title.
	SetTitle(title string)

	// Close destroys the window and releases its resources.
	Close() error
}

// Viewer owns a window [Backend] and the [anim.Queue] of property
// animations that the task supervisor pulses through [Viewer.Poll].
type Viewer struct {
	backend Backend

	// queue holds the active property animations; it is pulsed on
	// every poll.
	queue *anim.Queue

	mu     sync.Mutex
	lights Lights

	watcher   *lightsWatcher
	closeOnce sync.Once
}

// New returns a new [Viewer] on the given window backend.
func New(backend Backend) *Viewer {
	v := &Viewer{backend: backend, queue: anim.NewQueue()}
	v.lights.Defaults()
	return v
}

// Poll processes pending window events and then advances all active
// animations once. It returns false once the window has been closed;
// the supervisor treats that as the terminal condition for the run.
func (v *Viewer) Poll() bool {
	if !v.backend.Poll() {
		return false
	}
	v.queue.Pulse()
	return true
}

// AddAnimation adds the given animation to the viewer's queue.
// It takes effect on the next poll.
func (v *Viewer) AddAnimation(an *anim.Animation) {
	v.queue.Add(an)
}

// RemoveAllAnimations forces every active animation to its terminal
// value and drops it from the queue.
func (v *Viewer) RemoveAllAnimations() {
	v.queue.Clear()
}

// Idle reports whether the animation queue has settled; see
// [anim.Queue.Idle].
func (v *Viewer) Idle() bool {
	return v.queue.Idle()
}

// SetTitle sets the window title.
func (v *Viewer) SetTitle(title string) {
	v.backend.SetTitle(title)
}

// Lights returns the current lighting configuration.
func (v *Viewer) Lights() Lights {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lights
}

// Close stops the lights watcher if one is running, ends all
// animations, and destroys the window. It is idempotent.
func (v *Viewer) Close() error {
	var err error
	v.closeOnce.Do(func() {
		v.mu.Lock()
		if v.watcher != nil {
			errors.Log(v.watcher.stop())
			v.watcher = nil
		}
		v.mu.Unlock()
		v.queue.Clear()
		err = v.backend.Close()
	})
	return err
}
