// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picogk

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/leap71/PicoGK-sub001/kernel"
	"github.com/leap71/PicoGK-sub001/viewer/driver/offscreen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a config running against the offscreen backend
// with a fast poll cadence and the run log in a temp dir.
func testConfig(t *testing.T) (*Config, *offscreen.Backend) {
	t.Helper()
	backend := offscreen.New("test", 100, 100)
	cfg := NewConfig()
	cfg.Backend = backend
	cfg.PollInterval = time.Millisecond
	cfg.LogPath = filepath.Join(t.TempDir(), "run.log")
	return cfg, backend
}

func TestRunEndsWithTask(t *testing.T) {
	rt := NewRuntime()
	cfg, backend := testConfig(t)
	cfg.EndAppWithTask = true

	ran := false
	start := time.Now()
	err := rt.Run(func() {
		ran = true
		// the singletons are registered before the task starts
		lib, err := rt.Library()
		assert.NoError(t, err)
		assert.Equal(t, float32(0.5), lib.VoxelSize())
		_, err = rt.Viewer()
		assert.NoError(t, err)
		lg, err := rt.Log()
		assert.NoError(t, err)
		lg.Log("building geometry")
	}, cfg)
	require.NoError(t, err)

	assert.True(t, ran)
	// no animations pending: the run ends on the first idle check
	// after the task finishes, not seconds later
	assert.Less(t, time.Since(start), 3*time.Second)
	assert.True(t, backend.Closed())
	assert.True(t, rt.Exiting())

	// teardown unregisters everything
	_, err = rt.Library()
	assert.True(t, errors.Is(err, ErrNotRegistered))
	_, err = rt.Viewer()
	assert.True(t, errors.Is(err, ErrNotRegistered))
	_, err = rt.Log()
	assert.True(t, errors.Is(err, ErrNotRegistered))
}

func TestRunViewerClosed(t *testing.T) {
	rt := NewRuntime()
	cfg, backend := testConfig(t)

	err := rt.Run(func() {
		// simulate the user closing the window while the task runs
		backend.RequestClose()
		for rt.ContinueTask(true) {
			time.Sleep(time.Millisecond)
		}
	}, cfg)
	require.NoError(t, err)
	assert.True(t, backend.Closed())
	assert.True(t, rt.Exiting())
}

func TestRunCooperativeCancellation(t *testing.T) {
	rt := NewRuntime()
	cfg, backend := testConfig(t)

	err := rt.Run(func() {
		rt.EndTask()
		assert.False(t, rt.ContinueTask(false))
		// an end-task request alone does not end the app
		assert.True(t, rt.ContinueTask(true))
		rt.CancelEndTask()
		assert.True(t, rt.ContinueTask(false))
		backend.RequestClose()
	}, cfg)
	require.NoError(t, err)
}

func TestRunInvalidVoxelSize(t *testing.T) {
	rt := NewRuntime()
	cfg, _ := testConfig(t)
	cfg.VoxelSize = -1
	assert.Error(t, rt.Run(func() {}, cfg))
	// nothing was left registered
	_, err := rt.Library()
	assert.True(t, errors.Is(err, ErrNotRegistered))
}

func TestRunConcurrentRunFails(t *testing.T) {
	rt := NewRuntime()
	lib, err := kernel.New(0.5)
	require.NoError(t, err)
	require.NoError(t, rt.RegisterLibrary(lib))

	cfg, _ := testConfig(t)
	err = rt.Run(func() {}, cfg)
	assert.True(t, errors.Is(err, ErrAlreadyRegistered))
}

func TestRunAbandonsStuckTask(t *testing.T) {
	rt := NewRuntime()
	cfg, backend := testConfig(t)
	cfg.ShutdownGrace = 50 * time.Millisecond

	release := make(chan struct{})
	defer close(release)
	start := time.Now()
	err := rt.Run(func() {
		backend.RequestClose()
		<-release // never checks ContinueTask
	}, cfg)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	assert.True(t, backend.Closed())
}

func TestRunSetupFailureCleansUp(t *testing.T) {
	rt := NewRuntime()
	cfg, _ := testConfig(t)
	// a lights file that does not exist is a fatal setup error
	cfg.LightsFile = filepath.Join(t.TempDir(), "missing.toml")

	assert.Error(t, rt.Run(func() {}, cfg))
	_, err := rt.Library()
	assert.True(t, errors.Is(err, ErrNotRegistered))
	_, err = rt.Log()
	assert.True(t, errors.Is(err, ErrNotRegistered))
}
