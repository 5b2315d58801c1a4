// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package transfer serializes event records to the import artifacts:
// a PostgreSQL upsert script, a JSON seed document, an optional iCalendar
// feed and an optional YAML run report.
package transfer

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultTable is the table targeted by the SQL script.
const DefaultTable = "calendar_events"

// Exporter writes event records to the supported output formats.
type Exporter struct {
	logger *slog.Logger
	table  string
	now    func() time.Time
}

// NewExporter creates a new Exporter instance.
func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{
		logger: logger,
		table:  DefaultTable,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetTable sets the table name used in INSERT statements.
func (e *Exporter) SetTable(name string) {
	e.table = name
}

// SetClock overrides the time source used for generated timestamps.
func (e *Exporter) SetClock(now func() time.Time) {
	e.now = now
}

// writeFile creates path and streams fn's output into it through a buffer.
// Close errors are reported since they may hide a failed flush.
func writeFile(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
