// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides easy, context-wrapped error handling,
// extending the standard library errors package.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Debug is whether to capture and print stack traces for errors.
var Debug = false

// Error is an error with a base error and an optional stack trace.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an [*Error] with a stack trace
// if [Debug] is on. It returns nil if the given error is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Base: err}
	if Debug {
		e.Stack = Stack()
	}
	return e
}

// New returns a new error with the given text, wrapped via [Wrap].
// It is the equivalent of [errors.New].
func New(text string) error {
	return Wrap(errors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped via [Wrap]. It is the equivalent of [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Is reports whether any error in err's tree matches target.
// It is a direct wrapper of [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Error returns the base error string, followed by the stack
// trace if one was captured.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// Unwrap returns the underlying base error.
func (e *Error) Unwrap() error {
	return e.Base
}
