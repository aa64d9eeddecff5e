// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen implements a headless viewer window backend,
// used for testing and for running tasks without a display.
package offscreen

import "sync"

// Backend is a windowless implementation of [viewer.Backend].
// Poll succeeds until [Backend.RequestClose] is called.
type Backend struct {
	mu       sync.Mutex
	title    string
	polls    int
	closeReq bool
	closed   bool
}

// New returns a new offscreen backend. The size is accepted for
// interface parity with the desktop driver and otherwise ignored.
func New(title string, width, height int) *Backend {
	return &Backend{title: title}
}

func (b *Backend) Poll() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closeReq {
		return false
	}
	b.polls++
	return true
}

func (b *Backend) SetTitle(title string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.title = title
}

func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// RequestClose makes all future polls report a closed window,
// the offscreen equivalent of the user closing it.
func (b *Backend) RequestClose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeReq = true
}

// Title returns the current window title.
func (b *Backend) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

// Polls returns how many successful polls have happened.
func (b *Backend) Polls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.polls
}

// Closed reports whether Close has been called.
func (b *Backend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}
