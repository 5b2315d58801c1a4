// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/olegiv/fairimport/internal/model"
)

// Report summarizes one import run.
type Report struct {
	GeneratedAt         string        `yaml:"generated_at"`
	Version             string        `yaml:"version"`
	Inputs              ReportInputs  `yaml:"inputs"`
	Outputs             ReportOutputs `yaml:"outputs"`
	Records             int           `yaml:"records"`
	CalendarRows        int           `yaml:"calendar_rows"`
	SkippedCalendarRows int           `yaml:"skipped_calendar_rows"`
	MergedRows          int           `yaml:"merged_rows"`
	Dates               int           `yaml:"dates"`
	EventTypes          []TypeCount   `yaml:"event_types"`
	DuplicateSlugs      []string      `yaml:"duplicate_slugs,omitempty"`
}

// ReportInputs lists the files read.
type ReportInputs struct {
	Fairs    string `yaml:"fairs"`
	Calendar string `yaml:"calendar"`
}

// ReportOutputs lists the files written. Disabled outputs are omitted.
type ReportOutputs struct {
	SQL    string `yaml:"sql"`
	JSON   string `yaml:"json"`
	Merged string `yaml:"merged"`
	ICS    string `yaml:"ics,omitempty"`
}

// TypeCount is the number of records of one event type.
type TypeCount struct {
	EventType model.EventType `yaml:"event_type"`
	Count     int             `yaml:"count"`
}

// CountEventTypes tallies records per event type in enumeration order.
// Types with no records are included with a zero count.
func CountEventTypes(records []model.EventRecord) []TypeCount {
	counts := make(map[model.EventType]int, len(model.EventTypes))
	for i := range records {
		counts[records[i].EventType]++
	}

	out := make([]TypeCount, 0, len(model.EventTypes))
	for _, t := range model.EventTypes {
		out = append(out, TypeCount{EventType: t, Count: counts[t]})
	}
	return out
}

// DuplicateSlugs returns every slug used by more than one record, in
// order of first repetition.
func DuplicateSlugs(records []model.EventRecord) []string {
	seen := make(map[string]int, len(records))
	var dupes []string
	for i := range records {
		slug := records[i].Slug
		seen[slug]++
		if seen[slug] == 2 {
			dupes = append(dupes, slug)
		}
	}
	return dupes
}

// WriteReport encodes r as YAML.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteReportFile writes the YAML report to path.
func (e *Exporter) WriteReportFile(path string, r *Report) error {
	if err := writeFile(path, func(w io.Writer) error { return WriteReport(w, r) }); err != nil {
		return err
	}
	e.logger.Info("run report written", "path", path)
	return nil
}
