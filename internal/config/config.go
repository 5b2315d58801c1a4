// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v11"

	"github.com/olegiv/fairimport/internal/logging"
)

// tableNameRegex restricts the SQL table to a plain, optionally
// schema-qualified identifier.
var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Config holds the importer configuration loaded from environment variables.
type Config struct {
	FairsPath    string `env:"FAIRS_INPUT" envDefault:"feiras_eventos_brasil_2026_completo.csv"`
	CalendarPath string `env:"FAIRS_CALENDAR" envDefault:"calendario_365_dias_completo_2026.csv"`

	SQLPath    string `env:"FAIRS_SQL_OUT" envDefault:"importar_feiras_2026.sql"`
	JSONPath   string `env:"FAIRS_JSON_OUT" envDefault:"feiras_2026_seed.json"`
	MergedPath string `env:"FAIRS_MERGED_OUT" envDefault:"calendario_2026_completo_com_feiras.csv"`
	ICSPath    string `env:"FAIRS_ICS_OUT"`    // Optional iCalendar feed
	ReportPath string `env:"FAIRS_REPORT_OUT"` // Optional YAML run report

	Table string `env:"FAIRS_SQL_TABLE" envDefault:"calendar_events"`

	LogLevel  string `env:"FAIRS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"FAIRS_LOG_FORMAT" envDefault:"text"`
}

// ICSEnabled returns true if the iCalendar feed should be written.
func (c Config) ICSEnabled() bool {
	return c.ICSPath != ""
}

// ReportEnabled returns true if the run report should be written.
func (c Config) ReportEnabled() bool {
	return c.ReportPath != ""
}

// RebaseOutputs moves every output file into dir, keeping file names.
func (c *Config) RebaseOutputs(dir string) {
	rebase := func(p *string) {
		if *p != "" {
			*p = filepath.Join(dir, filepath.Base(*p))
		}
	}
	rebase(&c.SQLPath)
	rebase(&c.JSONPath)
	rebase(&c.MergedPath)
	rebase(&c.ICSPath)
	rebase(&c.ReportPath)
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("FAIRS_LOG_LEVEL: %w", err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("FAIRS_LOG_FORMAT: %w", err)
	}
	if !tableNameRegex.MatchString(c.Table) {
		return fmt.Errorf("FAIRS_SQL_TABLE %q is not a valid table name", c.Table)
	}
	if c.FairsPath == "" || c.CalendarPath == "" {
		return fmt.Errorf("FAIRS_INPUT and FAIRS_CALENDAR must not be empty")
	}
	if c.SQLPath == "" || c.JSONPath == "" || c.MergedPath == "" {
		return fmt.Errorf("FAIRS_SQL_OUT, FAIRS_JSON_OUT and FAIRS_MERGED_OUT must not be empty")
	}
	return nil
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
