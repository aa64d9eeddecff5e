// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Easings are the supported easing functions for animations.
// An easing function maps normalized progress in [0,1] to eased
// progress in [0,1], reparameterizing linear time into a
// perceptually non-linear curve.
type Easings int32 //enums:enum

const (
	// Linear is the identity easing.
	Linear Easings = iota

	// SineIn starts slow and accelerates, following a sine curve.
	SineIn

	// SineOut starts fast and decelerates, following a sine curve.
	SineOut

	// SineInOut accelerates then decelerates, following a sine curve.
	SineInOut

	// QuadIn starts slow and accelerates quadratically.
	QuadIn

	// QuadOut starts fast and decelerates quadratically.
	QuadOut

	// QuadInOut accelerates then decelerates quadratically.
	QuadInOut

	// CubicIn starts slow and accelerates cubically.
	CubicIn

	// CubicOut starts fast and decelerates cubically.
	CubicOut

	// CubicInOut accelerates then decelerates cubically.
	CubicInOut
)

func (e Easings) String() string {
	switch e {
	case Linear:
		return "Linear"
	case SineIn:
		return "SineIn"
	case SineOut:
		return "SineOut"
	case SineInOut:
		return "SineInOut"
	case QuadIn:
		return "QuadIn"
	case QuadOut:
		return "QuadOut"
	case QuadInOut:
		return "QuadInOut"
	case CubicIn:
		return "CubicIn"
	case CubicOut:
		return "CubicOut"
	case CubicInOut:
		return "CubicInOut"
	}
	return "Easings(" + strconv.Itoa(int(e)) + ")"
}

// Func returns the easing function for the given kind.
// It panics for a value outside of the closed enum, which
// indicates an internal consistency failure, never a normal
// runtime condition.
func (e Easings) Func() func(x float32) float32 {
	switch e {
	case Linear:
		return EaseLinear
	case SineIn:
		return EaseSineIn
	case SineOut:
		return EaseSineOut
	case SineInOut:
		return EaseSineInOut
	case QuadIn:
		return EaseQuadIn
	case QuadOut:
		return EaseQuadOut
	case QuadInOut:
		return EaseQuadInOut
	case CubicIn:
		return EaseCubicIn
	case CubicOut:
		return EaseCubicOut
	case CubicInOut:
		return EaseCubicInOut
	}
	panic("anim: invalid easing kind " + e.String())
}

// EaseLinear is the identity easing function.
func EaseLinear(x float32) float32 { return x }

// EaseSineIn eases in along a sine curve: 1 - cos(xπ/2).
// The 0 and 1 boundaries are returned exactly; float32 trig at
// π/2 does not round-trip exactly on all platforms.
func EaseSineIn(x float32) float32 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return 1 - math32.Cos(x*math32.Pi/2)
}

// EaseSineOut eases out along a sine curve: sin(xπ/2).
func EaseSineOut(x float32) float32 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math32.Sin(x * math32.Pi / 2)
}

// EaseSineInOut eases in and out along a sine curve: -(cos(πx)-1)/2.
func EaseSineInOut(x float32) float32 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -(math32.Cos(math32.Pi*x) - 1) / 2
}

// EaseQuadIn eases in quadratically: x².
func EaseQuadIn(x float32) float32 { return x * x }

// EaseQuadOut eases out quadratically: 1-(1-x)².
func EaseQuadOut(x float32) float32 {
	c := 1 - x
	return 1 - c*c
}

// EaseQuadInOut eases in and out quadratically.
func EaseQuadInOut(x float32) float32 {
	if x < 0.5 {
		return 2 * x * x
	}
	c := -2*x + 2
	return 1 - c*c/2
}

// EaseCubicIn eases in cubically: x³.
func EaseCubicIn(x float32) float32 { return x * x * x }

// EaseCubicOut eases out cubically: 1-(1-x)³.
func EaseCubicOut(x float32) float32 {
	c := 1 - x
	return 1 - c*c*c
}

// EaseCubicInOut eases in and out cubically.
func EaseCubicInOut(x float32) float32 {
	if x < 0.5 {
		return 4 * x * x * x
	}
	c := -2*x + 2
	return 1 - c*c*c/2
}
