// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim implements time-driven property animations for the
// viewer: easing functions, a single timed transition ([Animation]),
// and a lock-guarded collection of active transitions ([Queue]) that
// is pulsed at a fixed cadence by the viewer poll loop.
package anim

import "strconv"

// Action is the capability an [Animation] drives: it receives eased
// progress in [0,1] at every pulse. Apply is called with exactly 0
// on the first pulse and with exactly 1 whenever the animation
// reaches or is forced past its end.
type Action interface {
	Apply(progress float32)
}

// ActionFunc is a function adapter implementing [Action].
type ActionFunc func(progress float32)

func (f ActionFunc) Apply(progress float32) { f(progress) }

// Modes are the repeat modes of an [Animation].
type Modes int32 //enums:enum

const (
	// Once runs the animation through a single cycle and finishes.
	Once Modes = iota

	// Repeat restarts the animation from the beginning after each cycle,
	// indefinitely.
	Repeat

	// Wiggle oscillates the animation forward and backward indefinitely,
	// reversing direction after each full cycle.
	Wiggle
)

func (m Modes) String() string {
	switch m {
	case Once:
		return "Once"
	case Repeat:
		return "Repeat"
	case Wiggle:
		return "Wiggle"
	}
	return "Modes(" + strconv.Itoa(int(m)) + ")"
}

// States are the lifecycle states of an [Animation].
// Only animations in the Once mode ever reach Finished on their own.
type States int32 //enums:enum

const (
	// NotStarted means the animation has not been pulsed yet.
	NotStarted States = iota

	// Running means the animation has been pulsed at least once.
	Running

	// Finished means a Once animation has reached the end of its cycle;
	// the owning [Queue] evicts it.
	Finished
)

func (s States) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Finished:
		return "Finished"
	}
	return "States(" + strconv.Itoa(int(s)) + ")"
}

// Animation is a single timed transition driving an [Action] from
// progress 0 to 1 over a fixed duration, using wall-clock time.
// It is created with [New] and owned exclusively by a [Queue];
// only its state, start time and direction mutate after construction.
type Animation struct {

	// Action receives the eased progress at every pulse.
	Action Action

	// Duration is the length of one animation cycle in seconds.
	Duration float32

	// Mode is the repeat mode.
	Mode Modes

	// Easing selects the easing function applied to mid-cycle progress.
	Easing Easings

	// state tracks the lifecycle explicitly rather than overloading
	// a zero start time as a "not started" sentinel, which would
	// misread a legitimate 0.0 clock reading.
	state States

	// start is the queue clock reading at the first pulse, re-baselined
	// by one Duration whenever a cycle runs over.
	start float32

	// reversed is the current direction for Wiggle animations,
	// toggled after each full cycle.
	reversed bool
}

// New returns a new [Animation] with the given action, cycle duration
// in seconds, repeat mode and easing. It panics if seconds is not
// positive or the action is nil; both are programming errors.
func New(action Action, seconds float32, mode Modes, easing Easings) *Animation {
	if action == nil {
		panic("anim: nil action")
	}
	if seconds <= 0 {
		panic("anim: animation duration must be positive")
	}
	return &Animation{Action: action, Duration: seconds, Mode: mode, Easing: easing}
}

// State returns the current lifecycle state.
func (an *Animation) State() States { return an.state }

// Reversed returns whether a Wiggle animation is currently
// running backward.
func (an *Animation) Reversed() bool { return an.reversed }

// End forces the animation to its terminal value by applying
// progress 1 unconditionally. It does not change the animation
// state; the [Queue] uses it when clearing mid-animation so that
// consumers observe a clean final state.
func (an *Animation) End() {
	an.Action.Apply(1)
}

// Advance advances the animation to the given time in seconds on the
// owning queue's clock, applying the action once. It returns whether
// the animation should be kept alive.
//
// On the first call it applies exactly 0 and records the start time.
// When a cycle completes it applies exactly 1; a Once animation then
// finishes, a Wiggle animation reverses direction, and if the cycle
// ran over its duration the start time is advanced by exactly one
// duration. Re-baselining rather than resetting to the current time
// prevents drift from accumulating, but sparse ticks skip ahead:
// missed cycles are not individually replayed. Mid-cycle, the eased
// progress is applied; the completion guard keeps raw progress in
// [0,1), so no clamping is needed.
func (an *Animation) Advance(now float32) bool {
	switch an.state {
	case Finished:
		return false
	case NotStarted:
		an.Action.Apply(0)
		an.start = now
		an.state = Running
		return true
	}
	elapsed := now - an.start
	if elapsed >= an.Duration {
		an.Action.Apply(1)
		if an.Mode == Once {
			an.state = Finished
			return false
		}
		if an.Mode == Wiggle {
			an.reversed = !an.reversed
		}
		if elapsed > an.Duration {
			an.start += an.Duration
		}
		return true
	}
	progress := elapsed / an.Duration
	if an.reversed {
		progress = 1 - progress
	}
	an.Action.Apply(an.Easing.Func()(progress))
	return true
}
