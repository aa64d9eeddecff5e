// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picogk

import (
	"time"

	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/leap71/PicoGK-sub001/base/logx"
	"github.com/leap71/PicoGK-sub001/kernel"
	"github.com/leap71/PicoGK-sub001/viewer"
	"github.com/leap71/PicoGK-sub001/viewer/driver"
)

// Run executes the given task on a worker goroutine while driving
// the viewer from the calling goroutine at a fixed polling cadence.
//
// Run constructs the geometry library, the run log, and the viewer,
// registers them on the runtime, and enters the poll loop: poll the
// viewer (which advances all animations), sleep one interval, and
// evaluate the exit conditions. The run ends when the user closes
// the viewer window, or, with [Config.EndAppWithTask], when the task
// has finished and the animation queue has settled. The singletons
// are unregistered and disposed in reverse order of construction on
// every exit path, including setup failure part-way through.
//
// Cancellation is cooperative: the task is expected to poll
// [Runtime.ContinueTask] and return promptly when it reports false.
// A task that never polls it is waited on only for
// [Config.ShutdownGrace] before the singletons are torn down.
//
// On desktop, Run must be called from the main goroutine; the window
// backend is bound to the main OS thread.
func (rt *Runtime) Run(task func(), cfg *Config) error {
	if cfg == nil {
		cfg = NewConfig()
	}
	cfg.ambientDefaults()

	// one concurrent run per runtime
	if rt.library.registered() {
		return errors.Errorf("picogk: run: %w", ErrAlreadyRegistered)
	}
	if cfg.VoxelSize <= 0 {
		return errors.Errorf("picogk: run: invalid voxel size %gmm; must be positive", cfg.VoxelSize)
	}

	lib, err := kernel.New(cfg.VoxelSize)
	if err != nil {
		return err
	}
	defer lib.Close()
	if err := rt.RegisterLibrary(lib); err != nil {
		return err
	}
	defer rt.UnregisterLibrary()

	lg, err := NewLogFile(cfg.LogPath)
	if err != nil {
		return err
	}
	defer lg.Close()
	if err := rt.RegisterLog(lg); err != nil {
		return err
	}
	defer rt.UnregisterLog()

	lg.Log("Voxel size  %gmm", cfg.VoxelSize)

	backend := cfg.Backend
	if backend == nil {
		backend, err = driver.New(cfg.WindowTitle, cfg.Width, cfg.Height)
		if err != nil {
			lg.Log("Viewer setup failed: %v", err)
			lg.Log("A working display and graphics driver are required;")
			lg.Log("use the offscreen build tag to run without one")
			return err
		}
	}
	vw := viewer.New(backend)
	defer vw.Close()
	if cfg.LightsFile != "" {
		if err := vw.WatchLights(cfg.LightsFile); err != nil {
			lg.Log("Lights setup failed: %v", err)
			return err
		}
		lg.Log("Lights file %s", cfg.LightsFile)
	}
	if err := rt.RegisterViewer(vw); err != nil {
		return err
	}
	defer rt.UnregisterViewer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		task()
	}()
	lg.Log("Task started")

	rt.poll(vw, cfg, done, lg)

	rt.exiting.Store(true)
	lg.Log("Shutting down")

	// join the worker before the deferred teardown runs; a task that
	// ignores cancellation is abandoned after the grace period
	select {
	case <-done:
		lg.Log("Task finished")
	case <-time.After(cfg.ShutdownGrace):
		lg.Log("Task did not stop within %v; abandoning it", cfg.ShutdownGrace)
		logx.PrintfWarn("task did not react to cancellation within %v", cfg.ShutdownGrace)
	}
	return nil
}

// poll is the supervisor loop. The fixed sleep is its only
// suspension point.
func (rt *Runtime) poll(vw *viewer.Viewer, cfg *Config, done chan struct{}, lg Logger) {
	for {
		if !vw.Poll() {
			lg.Log("Viewer closed")
			return
		}
		time.Sleep(cfg.PollInterval)
		if !cfg.EndAppWithTask {
			continue
		}
		select {
		case <-done:
			// let pending animations settle before closing
			if vw.Idle() {
				lg.Log("Task finished and viewer idle")
				return
			}
		default:
		}
	}
}
