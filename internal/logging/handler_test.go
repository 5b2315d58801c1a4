package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("JSON"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(JSON) = %q, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatText {
		t.Errorf("ParseFormat(\"\") = %q, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestCountingHandler_CountsWarnAndAbove(t *testing.T) {
	h := NewCountingHandler(discardHandler{}, slog.LevelWarn)
	logger := slog.New(h)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("duplicate slug", "slug", "x")
	logger.Error("failed", "error", "boom")

	if got := h.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestCountingHandler_SharedAcrossDerivedLoggers(t *testing.T) {
	h := NewCountingHandler(discardHandler{}, slog.LevelWarn)
	logger := slog.New(h)

	logger.With("component", "merger").Warn("one")
	logger.WithGroup("calendar").Warn("two")

	if got := h.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	logger, counter := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Warn("visible", "path", "a.csv")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %s", out)
	}
	if !strings.Contains(out, `"msg":"visible"`) || !strings.Contains(out, `"path":"a.csv"`) {
		t.Errorf("unexpected JSON output: %s", out)
	}
	if counter.Count() != 1 {
		t.Errorf("Count() = %d, want 1", counter.Count())
	}

	buf.Reset()
	logger, _ = New(&buf, "debug", "text")
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "level=DEBUG msg=shown") {
		t.Errorf("unexpected text output: %s", buf.String())
	}
}
