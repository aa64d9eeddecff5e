// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
)

// PrintfDebug logs the given formatted message at [slog.LevelDebug].
func PrintfDebug(format string, a ...any) {
	slog.Debug(fmt.Sprintf(format, a...))
}

// PrintfInfo logs the given formatted message at [slog.LevelInfo].
func PrintfInfo(format string, a ...any) {
	slog.Info(fmt.Sprintf(format, a...))
}

// PrintfWarn logs the given formatted message at [slog.LevelWarn].
func PrintfWarn(format string, a ...any) {
	slog.Warn(fmt.Sprintf(format, a...))
}

// PrintfError logs the given formatted message at [slog.LevelError].
func PrintfError(format string, a ...any) {
	slog.Error(fmt.Sprintf(format, a...))
}
