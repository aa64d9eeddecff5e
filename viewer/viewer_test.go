// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"testing"

	"github.com/leap71/PicoGK-sub001/anim"
	"github.com/leap71/PicoGK-sub001/viewer/driver/offscreen"
	"github.com/stretchr/testify/assert"
)

// ticker is an [anim.Action] counting how often it was applied.
type ticker struct {
	applied []float32
}

func (tk *ticker) Apply(progress float32) {
	tk.applied = append(tk.applied, progress)
}

func TestViewerPoll(t *testing.T) {
	backend := offscreen.New("test", 640, 480)
	v := New(backend)

	tk := &ticker{}
	v.AddAnimation(anim.New(tk, 1, anim.Repeat, anim.Linear))
	assert.True(t, v.Poll())
	assert.True(t, v.Poll())
	assert.GreaterOrEqual(t, len(tk.applied), 2)
	assert.Equal(t, 2, backend.Polls())

	backend.RequestClose()
	assert.False(t, v.Poll())
	// a closed window stops pulsing animations
	n := len(tk.applied)
	assert.False(t, v.Poll())
	assert.Len(t, tk.applied, n)
}

func TestViewerRemoveAllAnimations(t *testing.T) {
	v := New(offscreen.New("test", 640, 480))
	tk := &ticker{}
	v.AddAnimation(anim.New(tk, 10, anim.Once, anim.Linear))
	v.Poll()
	v.RemoveAllAnimations()
	assert.Equal(t, float32(1), tk.applied[len(tk.applied)-1])

	n := len(tk.applied)
	v.Poll()
	assert.Len(t, tk.applied, n)
}

func TestViewerIdle(t *testing.T) {
	v := New(offscreen.New("test", 640, 480))
	// no animation has ever run
	assert.True(t, v.Idle())
	v.AddAnimation(anim.New(&ticker{}, 1, anim.Repeat, anim.Linear))
	v.Poll()
	assert.False(t, v.Idle())
}

func TestViewerClose(t *testing.T) {
	backend := offscreen.New("test", 640, 480)
	v := New(backend)
	tk := &ticker{}
	v.AddAnimation(anim.New(tk, 10, anim.Once, anim.Linear))

	assert.NoError(t, v.Close())
	assert.True(t, backend.Closed())
	// close lands every animation on its terminal value
	assert.Equal(t, []float32{1}, tk.applied)
	assert.NoError(t, v.Close())
}

func TestViewerSetTitle(t *testing.T) {
	backend := offscreen.New("test", 640, 480)
	v := New(backend)
	v.SetTitle("PicoGK 1.0")
	assert.Equal(t, "PicoGK 1.0", backend.Title())
}
