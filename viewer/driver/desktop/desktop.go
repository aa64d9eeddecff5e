// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

// Package desktop implements the viewer window backend for desktop
// platforms using glfw.
package desktop

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leap71/PicoGK-sub001/base/errors"
)

func init() {
	// glfw event processing must run on the initial OS thread
	runtime.LockOSThread()
}

// Backend is a glfw window implementing [viewer.Backend].
// All methods must be called from the thread that created it.
type Backend struct {
	window *glfw.Window
}

// New initializes glfw and opens a window with the given title and
// size in pixels.
func New(title string, width, height int) (*Backend, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Errorf("desktop: failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.True)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Errorf("desktop: failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	return &Backend{window: window}, nil
}

// Poll processes pending window events. It returns false once the
// user has closed the window.
func (b *Backend) Poll() bool {
	if b.window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// SetTitle sets the window title.
func (b *Backend) SetTitle(title string) {
	b.window.SetTitle(title)
}

// Close destroys the window and terminates glfw.
func (b *Backend) Close() error {
	b.window.Destroy()
	glfw.Terminate()
	return nil
}
