// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package calendar merges the fair events into the legacy daily calendar
// CSV. Rows are grouped by date and written in ascending date order,
// existing calendar rows first within a date.
package calendar

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/olegiv/fairimport/internal/fairs"
	"github.com/olegiv/fairimport/internal/model"
)

// HeaderlessPrefix marks a legacy calendar whose first line is already data.
// Any other first line is treated as a header and skipped.
const HeaderlessPrefix = "2026"

// Existing holds the rows read from a legacy calendar file.
type Existing struct {
	Rows []model.CalendarRow
	// Skipped lists source line numbers of rows with fewer than six fields.
	Skipped []int
}

// LoadExisting reads a legacy calendar. Rows with fewer than six fields
// are dropped and reported in Skipped; fields past the sixth are ignored.
func LoadExisting(r io.Reader) (*Existing, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading calendar: %w", err)
	}

	lineOffset := 0
	if !bytes.HasPrefix(data, []byte(HeaderlessPrefix)) {
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			data = data[i+1:]
		} else {
			data = nil
		}
		lineOffset = 1
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	out := &Existing{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading calendar: %w", err)
		}

		if len(record) < len(model.CalendarColumns) {
			line, _ := reader.FieldPos(0)
			out.Skipped = append(out.Skipped, line+lineOffset)
			continue
		}

		out.Rows = append(out.Rows, model.CalendarRow{
			Date:        record[0],
			DayOfMonth:  record[1],
			WeekdayName: record[2],
			EventNames:  record[3],
			Categories:  record[4],
			Tags:        record[5],
		})
	}

	return out, nil
}

// FromFairRows shapes fair rows as calendar rows. The weekday is left
// empty and categories are "<tipo_evento>|<segmento>" lowercased.
func FromFairRows(rows []fairs.Row) ([]model.CalendarRow, error) {
	out := make([]model.CalendarRow, 0, len(rows))
	for _, row := range rows {
		parts := strings.Split(row.Date, "-")
		if len(parts) < 3 {
			return nil, &fairs.ParseError{
				Line:   row.Line,
				Column: fairs.ColDate,
				Value:  row.Date,
				Err:    errors.New("expected YYYY-MM-DD"),
			}
		}

		out = append(out, model.CalendarRow{
			Date:       row.Date,
			DayOfMonth: parts[2],
			EventNames: row.Name,
			Categories: strings.ToLower(row.EventKind) + "|" + strings.ToLower(row.Segment),
			Tags:       row.Tags,
		})
	}
	return out, nil
}

// Merge interleaves existing and fair rows by date. Dates are sorted as
// strings, which orders zero-padded ISO dates chronologically. Within a
// date, existing rows come first, each group in its original order.
func Merge(existing, fair []model.CalendarRow) []model.CalendarRow {
	existingByDate := groupByDate(existing)
	fairByDate := groupByDate(fair)

	dates := make([]string, 0, len(existingByDate)+len(fairByDate))
	for d := range existingByDate {
		dates = append(dates, d)
	}
	for d := range fairByDate {
		if _, ok := existingByDate[d]; !ok {
			dates = append(dates, d)
		}
	}
	slices.Sort(dates)

	out := make([]model.CalendarRow, 0, len(existing)+len(fair))
	for _, d := range dates {
		out = append(out, existingByDate[d]...)
		out = append(out, fairByDate[d]...)
	}
	return out
}

// Dates counts the distinct dates in rows.
func Dates(rows []model.CalendarRow) int {
	return len(groupByDate(rows))
}

// Write emits the six-column header and rows as CSV with CRLF line endings.
func Write(w io.Writer, rows []model.CalendarRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(model.CalendarColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func groupByDate(rows []model.CalendarRow) map[string][]model.CalendarRow {
	groups := make(map[string][]model.CalendarRow)
	for _, row := range rows {
		groups[row.Date] = append(groups[row.Date], row)
	}
	return groups
}
