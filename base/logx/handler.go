// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that prints levels in color and
// formats messages for end users rather than for log files.
type Handler struct {
	mu     sync.Mutex
	w      io.Writer
	out    *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, out: termenv.NewOutput(w)}
}

// UseDefault sets the default [slog] logger to a [Handler]
// writing to [os.Stderr], gated by [UserLevel].
func UseDefault() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	p := h.out.ColorProfile()
	switch {
	case level >= slog.LevelError:
		return h.out.String("ERROR").Foreground(p.Color("1")).Bold().String()
	case level >= slog.LevelWarn:
		return h.out.String("WARN").Foreground(p.Color("3")).String()
	case level >= slog.LevelInfo:
		return h.out.String("INFO").Foreground(p.Color("4")).String()
	default:
		return h.out.String("DEBUG").Foreground(p.Color("5")).String()
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	var b strings.Builder
	b.WriteString(h.levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&b, " %s=%v", key, a.Value)
		return true
	})
	b.WriteString("\n")
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := NewHandler(h.w)
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	// attrs are qualified by the groups open at the time they are added
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	nh.groups = h.groups
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := NewHandler(h.w)
	nh.attrs = h.attrs
	nh.groups = append(append([]string{}, h.groups...), name)
	return nh
}
