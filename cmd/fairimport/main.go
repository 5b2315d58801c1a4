// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/olegiv/fairimport/internal/config"
	"github.com/olegiv/fairimport/internal/logging"
	"github.com/olegiv/fairimport/internal/service"
	"github.com/olegiv/fairimport/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// overrides holds command-line values that take precedence over the environment.
type overrides struct {
	fairsPath    string
	calendarPath string
	outDir       string
}

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	var ov overrides
	flag.StringVar(&ov.fairsPath, "fairs", "", "Fair CSV to import (overrides FAIRS_INPUT)")
	flag.StringVar(&ov.calendarPath, "calendar", "", "Existing calendar CSV (overrides FAIRS_CALENDAR)")
	flag.StringVar(&ov.outDir, "out-dir", "", "Directory for all output files")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "fairimport - Trade fair calendar importer\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_INPUT        Fair CSV (default: feiras_eventos_brasil_2026_completo.csv)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_CALENDAR     Existing calendar CSV (default: calendario_365_dias_completo_2026.csv)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_SQL_OUT      SQL upsert script (default: importar_feiras_2026.sql)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_JSON_OUT     JSON seed (default: feiras_2026_seed.json)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_MERGED_OUT   Merged calendar CSV (default: calendario_2026_completo_com_feiras.csv)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_ICS_OUT      iCalendar feed (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_REPORT_OUT   YAML run report (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_SQL_TABLE    Target table (default: calendar_events)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_LOG_LEVEL    debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  FAIRS_LOG_FORMAT   text|json (default: text)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	info := version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Println(info.String())
		os.Exit(0)
	}

	if err := run(ov, info); err != nil {
		slog.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ov overrides, info version.Info) error {
	// Load .env file if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if ov.fairsPath != "" {
		cfg.FairsPath = ov.fairsPath
	}
	if ov.calendarPath != "" {
		cfg.CalendarPath = ov.calendarPath
	}
	if ov.outDir != "" {
		if err := os.MkdirAll(ov.outDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		cfg.RebaseOutputs(ov.outDir)
	}

	logger, warnings := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting import", "version", info.Version, "fairs", cfg.FairsPath, "calendar", cfg.CalendarPath)
	start := time.Now()

	svc := service.NewImportService(cfg, logger, info)
	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	slog.Info("import finished",
		"records", len(res.Records),
		"files", len(res.Written),
		"warnings", warnings.Count(),
		"duration", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
