// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives a [Queue] by hand.
type fakeClock struct {
	mu  sync.Mutex
	sec float32
}

func (c *fakeClock) set(sec float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sec = sec
}

func (c *fakeClock) now() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sec
}

func newTestQueue() (*Queue, *fakeClock) {
	q := NewQueue()
	c := &fakeClock{}
	q.now = c.now
	return q, c
}

func TestQueueEmptyPulse(t *testing.T) {
	q, _ := newTestQueue()
	assert.False(t, q.Pulse())
}

func TestQueuePulse(t *testing.T) {
	q, c := newTestQueue()
	r := &recorder{}
	q.Add(New(r, 1, Once, Linear))
	assert.Equal(t, 1, q.Len())

	assert.True(t, q.Pulse())
	assert.Equal(t, []float32{0}, r.values)

	c.set(0.5)
	assert.True(t, q.Pulse())
	assert.Equal(t, float32(0.5), r.last())
}

func TestQueueEvictsFinished(t *testing.T) {
	q, c := newTestQueue()
	r := &recorder{}
	q.Add(New(r, 1, Once, Linear))
	q.Pulse()
	c.set(1)
	assert.True(t, q.Pulse())
	assert.Equal(t, float32(1), r.last())
	assert.Equal(t, 0, q.Len())

	// the evicting pulse still counts as work; the next one does not
	assert.False(t, q.Pulse())
}

func TestQueueKeepsRepeating(t *testing.T) {
	q, c := newTestQueue()
	r := &recorder{}
	q.Add(New(r, 1, Wiggle, Linear))
	q.Pulse()
	for _, sec := range []float32{1.2, 2.4, 3.6, 4.8} {
		c.set(sec)
		assert.True(t, q.Pulse())
	}
	assert.Equal(t, 1, q.Len())
}

func TestQueueClear(t *testing.T) {
	q, c := newTestQueue()
	started := &recorder{}
	pending := &recorder{}
	q.Add(New(started, 1, Once, Linear))
	q.Pulse()
	c.set(0.25)
	q.Pulse()
	q.Add(New(pending, 1, Repeat, Linear))

	q.Clear()
	// every animation lands on its terminal value, even the one
	// that never started
	assert.Equal(t, float32(1), started.last())
	assert.Equal(t, []float32{1}, pending.values)
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Pulse())
}

func TestQueueIdle(t *testing.T) {
	q, c := newTestQueue()
	// a queue that has never done any work is already idle
	assert.True(t, q.Idle())

	r := &recorder{}
	q.Add(New(r, 1, Once, Linear))
	q.Pulse()
	assert.False(t, q.Idle())

	c.set(IdleThresholdSeconds)
	assert.False(t, q.Idle())
	c.set(IdleThresholdSeconds + 0.01)
	assert.True(t, q.Idle())
}

func TestQueueConcurrentAdd(t *testing.T) {
	q, _ := newTestQueue()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Add(New(&recorder{}, 1, Repeat, Linear))
			q.Pulse()
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, q.Len())
}
