// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package logging builds the importer's slog logger and provides a handler
// that counts warnings so a run can report them at the end.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat validates a log format name.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// New creates a logger writing to w. Unknown level or format values fall
// back to info and text.
func New(w io.Writer, level, format string) (*slog.Logger, *CountingHandler) {
	lvl, _ := ParseLevel(level)
	f, _ := ParseFormat(format)

	opts := &slog.HandlerOptions{Level: lvl}
	var inner slog.Handler
	if f == FormatJSON {
		inner = slog.NewJSONHandler(w, opts)
	} else {
		inner = slog.NewTextHandler(w, opts)
	}

	counter := NewCountingHandler(inner, slog.LevelWarn)
	return slog.New(counter), counter
}

// CountingHandler is a slog.Handler that wraps another handler and counts
// records at or above a threshold level.
type CountingHandler struct {
	inner slog.Handler
	level slog.Level
	count *atomic.Int64
}

// NewCountingHandler creates a CountingHandler that wraps the given handler.
func NewCountingHandler(inner slog.Handler, level slog.Level) *CountingHandler {
	return &CountingHandler{
		inner: inner,
		level: level,
		count: new(atomic.Int64),
	}
}

// Count returns the number of records counted so far, including those
// logged through derived handlers.
func (h *CountingHandler) Count() int64 {
	return h.count.Load()
}

// Enabled implements slog.Handler.
func (h *CountingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *CountingHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.level {
		h.count.Add(1)
	}
	return h.inner.Handle(ctx, r)
}

// WithAttrs implements slog.Handler.
func (h *CountingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CountingHandler{
		inner: h.inner.WithAttrs(attrs),
		level: h.level,
		count: h.count,
	}
}

// WithGroup implements slog.Handler.
func (h *CountingHandler) WithGroup(name string) slog.Handler {
	return &CountingHandler{
		inner: h.inner.WithGroup(name),
		level: h.level,
		count: h.count,
	}
}
