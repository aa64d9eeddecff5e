// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"slices"
	"sync"
	"time"

	"github.com/chewxy/math32"
)

// IdleThresholdSeconds is how long a [Queue] must go without
// performing any animation work before it reports idle. Idle
// queues signal that visual settling is complete.
const IdleThresholdSeconds = 5

// Queue owns the set of active animations for a viewer and advances
// all of them once per [Queue.Pulse]. All access to the set is
// serialized by a single mutex scoped to the queue; the actions the
// animations drive may touch other resources, and serializing those
// effects is the action's responsibility, not the queue's.
type Queue struct {
	mu     sync.Mutex
	active []*Animation

	// start anchors the queue's monotonic elapsed clock.
	start time.Time

	// now returns elapsed seconds since the queue was created.
	// Tests substitute it to drive the clock by hand.
	now func() float32

	// lastAction is the clock reading of the most recent pulse that
	// iterated at least one animation. It starts at -Inf so that a
	// queue that has never done any work is already idle.
	lastAction float32

	idleSeconds float32
}

// NewQueue returns a new [Queue] with its elapsed clock started.
func NewQueue() *Queue {
	q := &Queue{
		start:       time.Now(),
		lastAction:  math32.Inf(-1),
		idleSeconds: IdleThresholdSeconds,
	}
	q.now = func() float32 {
		return float32(time.Since(q.start).Seconds())
	}
	return q
}

// Add inserts the given animation into the active set.
// It takes effect on the next pulse.
func (q *Queue) Add(an *Animation) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.active = append(q.active, an)
}

// Clear forces every active animation to its terminal value via
// [Animation.End] and then empties the set.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, an := range q.active {
		an.End()
	}
	q.active = nil
}

// Len returns the number of active animations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.active)
}

// Pulse advances every active animation once against the current
// elapsed clock and evicts finished ones. It returns whether any
// visible work happened; a pulse of an empty queue is not work.
//
// Eviction is two-pass: animations whose Advance returned false are
// re-advanced once more and only removed if they decline again. A
// single pass would change Wiggle semantics, because Advance has
// side effects (direction toggling) on every invocation.
func (q *Queue) Pulse() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	if len(q.active) == 0 {
		return false
	}
	var finished []*Animation
	for _, an := range q.active {
		if !an.Advance(now) {
			finished = append(finished, an)
		}
		q.lastAction = now
	}
	for _, an := range finished {
		if an.Advance(now) {
			continue
		}
		q.active = slices.DeleteFunc(q.active, func(a *Animation) bool {
			return a == an
		})
	}
	return true
}

// Idle reports whether the queue has gone longer than the idle
// threshold without performing any animation work.
func (q *Queue) Idle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.now()-q.lastAction > q.idleSeconds
}
