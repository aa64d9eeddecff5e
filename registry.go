// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picogk

import (
	"sync"
	"sync/atomic"

	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/leap71/PicoGK-sub001/kernel"
	"github.com/leap71/PicoGK-sub001/viewer"
)

var (
	// ErrAlreadyRegistered is returned when registering into an
	// occupied singleton slot, such as starting a second concurrent
	// [Runtime.Run]. It signals a programming error.
	ErrAlreadyRegistered = errors.New("an instance is already registered")

	// ErrNotRegistered is returned when accessing a singleton slot
	// before a [Runtime.Run] has registered it.
	ErrNotRegistered = errors.New("no instance is registered; is a task running?")
)

// slot is one singleton slot of a [Runtime]. Each slot has its own
// lock, so contention on one singleton never blocks access to the
// others. The slot only observes the instance; ownership stays with
// the task supervisor.
type slot[T any] struct {
	mu    sync.Mutex
	value T
	full  bool
}

func (s *slot[T]) register(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return ErrAlreadyRegistered
	}
	s.value = v
	s.full = true
	return nil
}

// unregister clears the slot unconditionally; it is idempotent.
func (s *slot[T]) unregister() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	s.value = zero
	s.full = false
}

func (s *slot[T]) get() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		var zero T
		return zero, ErrNotRegistered
	}
	return s.value, nil
}

func (s *slot[T]) registered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.full
}

// Runtime holds the singletons and run state for one task run: the
// geometry library handle, the run log, the viewer, and the
// cooperative shutdown flags. The package-level functions operate on
// [TheRuntime]; tests create independent instances.
type Runtime struct {
	library slot[*kernel.Library]
	log     slot[Logger]
	viewer  slot[*viewer.Viewer]

	// endTask is the cooperative cancellation flag set by
	// [Runtime.EndTask]; the running task polls it through
	// [Runtime.ContinueTask].
	endTask atomic.Bool

	// exiting is set exactly once, when the supervisor poll loop
	// terminates. It is never reset for the life of the runtime.
	exiting atomic.Bool
}

// NewRuntime returns a new, empty [Runtime].
func NewRuntime() *Runtime {
	return &Runtime{}
}

// RegisterLibrary registers the geometry library handle.
// It fails if one is already registered.
func (rt *Runtime) RegisterLibrary(lib *kernel.Library) error {
	if err := rt.library.register(lib); err != nil {
		return errors.Errorf("picogk: library: %w", err)
	}
	return nil
}

// UnregisterLibrary clears the library slot.
func (rt *Runtime) UnregisterLibrary() { rt.library.unregister() }

// Library returns the registered geometry library handle.
func (rt *Runtime) Library() (*kernel.Library, error) {
	lib, err := rt.library.get()
	if err != nil {
		return nil, errors.Errorf("picogk: library: %w", err)
	}
	return lib, nil
}

// RegisterLog registers the run log. It fails if one is already
// registered.
func (rt *Runtime) RegisterLog(lg Logger) error {
	if err := rt.log.register(lg); err != nil {
		return errors.Errorf("picogk: log: %w", err)
	}
	return nil
}

// UnregisterLog clears the log slot.
func (rt *Runtime) UnregisterLog() { rt.log.unregister() }

// Log returns the registered run log.
func (rt *Runtime) Log() (Logger, error) {
	lg, err := rt.log.get()
	if err != nil {
		return nil, errors.Errorf("picogk: log: %w", err)
	}
	return lg, nil
}

// RegisterViewer registers the viewer. It fails if one is already
// registered.
func (rt *Runtime) RegisterViewer(v *viewer.Viewer) error {
	if err := rt.viewer.register(v); err != nil {
		return errors.Errorf("picogk: viewer: %w", err)
	}
	return nil
}

// UnregisterViewer clears the viewer slot.
func (rt *Runtime) UnregisterViewer() { rt.viewer.unregister() }

// Viewer returns the registered viewer.
func (rt *Runtime) Viewer() (*viewer.Viewer, error) {
	v, err := rt.viewer.get()
	if err != nil {
		return nil, errors.Errorf("picogk: viewer: %w", err)
	}
	return v, nil
}

// ContinueTask reports whether the running task should keep going.
// It returns false once the app is exiting, or once [Runtime.EndTask]
// has been called and appExitOnly is false. Tasks are expected to
// poll it periodically and return promptly when it reports false;
// the supervisor never forcibly terminates a task.
func (rt *Runtime) ContinueTask(appExitOnly bool) bool {
	if rt.exiting.Load() {
		return false
	}
	return appExitOnly || !rt.endTask.Load()
}

// EndTask requests that the running task stop at its next
// [Runtime.ContinueTask] poll. It does not affect the app lifecycle.
func (rt *Runtime) EndTask() { rt.endTask.Store(true) }

// CancelEndTask withdraws a previous [Runtime.EndTask] request.
// It cannot revive a task once the app is exiting.
func (rt *Runtime) CancelEndTask() { rt.endTask.Store(false) }

// Exiting reports whether the supervisor poll loop has terminated.
func (rt *Runtime) Exiting() bool { return rt.exiting.Load() }
