// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic services.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/olegiv/fairimport/internal/calendar"
	"github.com/olegiv/fairimport/internal/config"
	"github.com/olegiv/fairimport/internal/fairs"
	"github.com/olegiv/fairimport/internal/model"
	"github.com/olegiv/fairimport/internal/transfer"
	"github.com/olegiv/fairimport/internal/version"
)

// ImportResult summarizes a completed import run.
type ImportResult struct {
	Records        []model.EventRecord
	Merge          *calendar.Result
	DuplicateSlugs []string
	Written        []string // output paths, in write order
}

// ImportService runs the whole fair import: parse, emit SQL and JSON,
// optionally ICS, merge the calendar and optionally write a report.
type ImportService struct {
	cfg      *config.Config
	logger   *slog.Logger
	exporter *transfer.Exporter
	merger   *calendar.Merger
	version  version.Info
	now      func() time.Time
}

// NewImportService creates a new ImportService.
func NewImportService(cfg *config.Config, logger *slog.Logger, info version.Info) *ImportService {
	exporter := transfer.NewExporter(logger.With("component", "transfer"))
	exporter.SetTable(cfg.Table)

	return &ImportService{
		cfg:      cfg,
		logger:   logger,
		exporter: exporter,
		merger:   calendar.NewMerger(logger.With("component", "calendar")),
		version:  info,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source for generated timestamps.
func (s *ImportService) SetClock(now func() time.Time) {
	s.now = now
	s.exporter.SetClock(now)
}

// Run executes the import. The fair CSV is read once and shared by the
// emitters and the calendar merge. Any error aborts the run; outputs
// written before the failure must not be treated as valid.
func (s *ImportService) Run(ctx context.Context) (*ImportResult, error) {
	cfg := s.cfg

	s.logger.Info("reading fairs", "path", cfg.FairsPath)
	rows, err := fairs.ReadFile(cfg.FairsPath)
	if err != nil {
		return nil, err
	}
	records, err := fairs.BuildRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", cfg.FairsPath, err)
	}
	s.logger.Info("fairs processed", "records", len(records))

	result := &ImportResult{
		Records:        records,
		DuplicateSlugs: transfer.DuplicateSlugs(records),
	}
	for _, slug := range result.DuplicateSlugs {
		s.logger.Warn("duplicate slug, later rows will overwrite earlier ones on upsert", "slug", slug)
	}

	steps := []struct {
		enabled bool
		path    string
		write   func(path string) error
	}{
		{true, cfg.SQLPath, func(p string) error { return s.exporter.WriteSQLFile(p, records) }},
		{true, cfg.JSONPath, func(p string) error { return s.exporter.WriteJSONFile(p, records) }},
		{cfg.ICSEnabled(), cfg.ICSPath, func(p string) error { return s.exporter.WriteICSFile(p, records) }},
		{true, cfg.MergedPath, func(p string) error {
			res, err := s.merger.MergeRows(rows, cfg.CalendarPath, p)
			result.Merge = res
			return err
		}},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := step.write(step.path); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, step.path)
	}

	if cfg.ReportEnabled() {
		if err := s.exporter.WriteReportFile(cfg.ReportPath, s.report(result)); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, cfg.ReportPath)
	}

	return result, nil
}

func (s *ImportService) report(res *ImportResult) *transfer.Report {
	cfg := s.cfg
	r := &transfer.Report{
		GeneratedAt: s.now().Format(time.RFC3339),
		Version:     s.version.Version,
		Inputs: transfer.ReportInputs{
			Fairs:    cfg.FairsPath,
			Calendar: cfg.CalendarPath,
		},
		Outputs: transfer.ReportOutputs{
			SQL:    cfg.SQLPath,
			JSON:   cfg.JSONPath,
			Merged: cfg.MergedPath,
			ICS:    cfg.ICSPath,
		},
		Records:        len(res.Records),
		EventTypes:     transfer.CountEventTypes(res.Records),
		DuplicateSlugs: res.DuplicateSlugs,
	}
	if m := res.Merge; m != nil {
		r.CalendarRows = m.CalendarRows
		r.SkippedCalendarRows = m.Skipped
		r.MergedRows = m.MergedRows
		r.Dates = m.Dates
	}
	return r
}
