// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package calendar

import (
	"bufio"
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/olegiv/fairimport/internal/fairs"
	"github.com/olegiv/fairimport/internal/model"
)

// Result describes a completed merge.
type Result struct {
	CalendarRows int
	Skipped      int
	FairRows     int
	MergedRows   int
	Dates        int
}

// Merger reads the calendar and fair files and writes the merged CSV.
type Merger struct {
	logger *slog.Logger
}

// NewMerger creates a new Merger instance.
func NewMerger(logger *slog.Logger) *Merger {
	return &Merger{logger: logger}
}

// MergeFiles reads the fair CSV at fairPath, merges it with the legacy
// calendar at calendarPath and writes the result to outPath.
func (m *Merger) MergeFiles(fairPath, calendarPath, outPath string) (*Result, error) {
	rows, err := fairs.ReadFile(fairPath)
	if err != nil {
		return nil, err
	}
	return m.MergeRows(rows, calendarPath, outPath)
}

// MergeRows merges already-read fair rows with the calendar at calendarPath.
func (m *Merger) MergeRows(rows []fairs.Row, calendarPath, outPath string) (*Result, error) {
	existing, err := m.LoadExistingFile(calendarPath)
	if err != nil {
		return nil, err
	}

	fair, err := FromFairRows(rows)
	if err != nil {
		return nil, err
	}

	merged := Merge(existing.Rows, fair)
	if err := writeMerged(outPath, merged); err != nil {
		return nil, err
	}

	res := &Result{
		CalendarRows: len(existing.Rows),
		Skipped:      len(existing.Skipped),
		FairRows:     len(fair),
		MergedRows:   len(merged),
		Dates:        Dates(merged),
	}
	m.logger.Info("merged calendar written",
		"path", outPath,
		"rows", res.MergedRows,
		"dates", res.Dates,
		"calendar_rows", res.CalendarRows,
		"fair_rows", res.FairRows,
	)
	return res, nil
}

// LoadExistingFile reads the legacy calendar at path.
func (m *Merger) LoadExistingFile(path string) (*Existing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading calendar file: %w", err)
	}

	existing, err := LoadExisting(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, line := range existing.Skipped {
		m.logger.Debug("skipping short calendar row", "path", path, "line", line)
	}
	return existing, nil
}

func writeMerged(path string, rows []model.CalendarRow) (err error) {
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
	if err := Write(bw, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
