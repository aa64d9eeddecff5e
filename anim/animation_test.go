// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// recorder is an [Action] capturing every progress value applied.
type recorder struct {
	values []float32
}

func (r *recorder) Apply(progress float32) {
	r.values = append(r.values, progress)
}

func (r *recorder) last() float32 {
	return r.values[len(r.values)-1]
}

func TestAnimationOnce(t *testing.T) {
	r := &recorder{}
	an := New(r, 1, Once, Linear)
	assert.Equal(t, NotStarted, an.State())

	assert.True(t, an.Advance(0))
	assert.Equal(t, Running, an.State())
	assert.Equal(t, []float32{0}, r.values)

	assert.True(t, an.Advance(0.5))
	assert.Equal(t, float32(0.5), r.last())

	assert.False(t, an.Advance(1))
	assert.Equal(t, Finished, an.State())
	assert.Equal(t, float32(1), r.last())

	// finished animations decline without re-applying
	n := len(r.values)
	assert.False(t, an.Advance(2))
	assert.Len(t, r.values, n)
}

func TestAnimationEased(t *testing.T) {
	r := &recorder{}
	an := New(r, 2, Once, QuadIn)
	an.Advance(0)
	an.Advance(1)
	assert.Equal(t, float32(0.25), r.last())
}

func TestAnimationWiggle(t *testing.T) {
	r := &recorder{}
	an := New(r, 1, Wiggle, Linear)
	an.Advance(0)
	assert.False(t, an.Reversed())

	// cycle overdue: terminal apply, direction flips, start re-baselines
	assert.True(t, an.Advance(1.2))
	assert.Equal(t, float32(1), r.last())
	assert.True(t, an.Reversed())

	// mid second cycle, running backward
	assert.True(t, an.Advance(1.5))
	assert.Equal(t, float32(0.5), r.last())

	assert.True(t, an.Advance(2.4))
	assert.False(t, an.Reversed())
}

func TestAnimationRepeatRebaseline(t *testing.T) {
	r := &recorder{}
	an := New(r, 1, Repeat, Linear)
	an.Advance(0)

	// a sparse tick advances the start by exactly one duration;
	// skipped cycles are not replayed
	assert.True(t, an.Advance(2.5))
	assert.Equal(t, float32(1), r.last())
	assert.True(t, an.Advance(2.7))
	assert.Equal(t, float32(1), r.last())
	assert.True(t, an.Advance(2.9))
	assert.InDelta(t, 0.9, r.last(), 1e-6)
}

func TestAnimationRepeatExactEnd(t *testing.T) {
	r := &recorder{}
	an := New(r, 1, Repeat, Linear)
	an.Advance(0)

	// landing exactly on the cycle end does not re-baseline
	assert.True(t, an.Advance(1))
	assert.Equal(t, float32(1), r.last())
	assert.True(t, an.Advance(1.5))
	assert.Equal(t, float32(1), r.last())
	assert.True(t, an.Advance(1.75))
	assert.Equal(t, float32(0.75), r.last())
}

func TestAnimationEnd(t *testing.T) {
	r := &recorder{}
	an := New(r, 1, Once, Linear)
	an.End()
	assert.Equal(t, []float32{1}, r.values)
	assert.Equal(t, NotStarted, an.State())
}

func TestNewInvalid(t *testing.T) {
	assert.Panics(t, func() { New(&recorder{}, 0, Once, Linear) })
	assert.Panics(t, func() { New(nil, 1, Once, Linear) })
}
