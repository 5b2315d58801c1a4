// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olegiv/fairimport/internal/model"
)

const sqlHeader = "-- SQL para importar feiras e eventos ao calendário 2026\n" +
	"-- Gerado automaticamente\n\n"

const sqlFooter = "\n-- Total de %d eventos importados\n"

// The conflict clause refreshes only mutable columns. slug, country, state,
// city, is_recurring, recurrence, source and status stay as first inserted.
const insertTemplate = `INSERT INTO %s (
    name, slug, description, event_type, date, is_recurring, recurrence,
    country, state, city, segments, tags, base_priority, confidence_level,
    source, status
) VALUES (
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %s,
    %d,
    %d,
    %s,
    %s
) ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    event_type = EXCLUDED.event_type,
    date = EXCLUDED.date,
    segments = EXCLUDED.segments,
    tags = EXCLUDED.tags,
    base_priority = EXCLUDED.base_priority,
    confidence_level = EXCLUDED.confidence_level,
    updated_at = NOW();

`

// WriteSQL writes one upsert statement per record, in order, between a
// fixed header comment and a row-count footer.
func (e *Exporter) WriteSQL(w io.Writer, records []model.EventRecord) error {
	if _, err := io.WriteString(w, sqlHeader); err != nil {
		return err
	}
	for i := range records {
		if _, err := io.WriteString(w, e.insertStatement(&records[i])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, sqlFooter, len(records))
	return err
}

// WriteSQLFile writes the SQL script to path.
func (e *Exporter) WriteSQLFile(path string, records []model.EventRecord) error {
	if err := writeFile(path, func(w io.Writer) error { return e.WriteSQL(w, records) }); err != nil {
		return err
	}
	e.logger.Info("sql script written", "path", path, "statements", len(records))
	return nil
}

func (e *Exporter) insertStatement(r *model.EventRecord) string {
	return fmt.Sprintf(insertTemplate,
		e.table,
		sqlString(r.Name),
		sqlString(r.Slug),
		sqlString(r.Description),
		sqlString(string(r.EventType)),
		sqlString(r.Date),
		strconv.FormatBool(r.IsRecurring),
		sqlString(r.Recurrence),
		sqlString(r.Country),
		sqlNullable(r.State),
		sqlNullable(r.City),
		sqlString(pgArray(r.Segments)),
		sqlString(pgArray(r.Tags)),
		r.BasePriority,
		r.ConfidenceLevel,
		sqlString(r.Source),
		sqlString(r.Status),
	)
}

// sqlString quotes s as a SQL literal. Single quotes are doubled; nothing
// else is escaped, so backslashes and control characters pass through.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// sqlNullable renders NULL for an absent or empty value.
func sqlNullable(s *string) string {
	if s == nil || *s == "" {
		return "NULL"
	}
	return sqlString(*s)
}

// pgArray renders items as a PostgreSQL array literal with every element
// double-quoted, e.g. {"a","b"}.
func pgArray(items []string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(item)
		sb.WriteByte('"')
	}
	sb.WriteByte('}')
	return sb.String()
}
