// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fairs reads the trade fair CSV and turns each row into a
// classified model.EventRecord.
package fairs

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olegiv/fairimport/internal/classify"
	"github.com/olegiv/fairimport/internal/model"
	"github.com/olegiv/fairimport/internal/util"
)

// Column names of the fair CSV header.
const (
	ColName            = "nome"
	ColDate            = "data"
	ColEventKind       = "tipo_evento"
	ColCity            = "cidade"
	ColState           = "estado"
	ColSegment         = "segmento"
	ColTags            = "tags"
	ColBasePriority    = "base_priority"
	ColConfidenceLevel = "confidence_level"
	ColSource          = "fonte"
)

// DateLayout is the only accepted date format.
const DateLayout = "2006-01-02"

// TagSeparator splits the tags column.
const TagSeparator = "|"

var requiredColumns = []string{
	ColName, ColDate, ColEventKind, ColCity, ColState,
	ColSegment, ColTags, ColBasePriority, ColConfidenceLevel, ColSource,
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one raw fair CSV row, before any classification.
type Row struct {
	Line            int
	Name            string
	Date            string
	EventKind       string
	City            string
	State           string
	Segment         string
	Tags            string
	BasePriority    string
	ConfidenceLevel string
	Source          string
}

// ReadFile loads the whole fair CSV at path.
func ReadFile(path string) ([]Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fairs file: %w", err)
	}
	rows, err := ReadRows(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rows, nil
}

// ReadRows reads a header-bearing fair CSV. Extra columns are ignored;
// missing trailing fields read as empty strings.
func ReadRows(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fairs csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file, no header", ErrMissingColumn)
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading fairs csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		field := func(col string) string {
			i := index[col]
			if i >= len(record) {
				return ""
			}
			return record[i]
		}

		rows = append(rows, Row{
			Line:            line,
			Name:            field(ColName),
			Date:            field(ColDate),
			EventKind:       field(ColEventKind),
			City:            field(ColCity),
			State:           field(ColState),
			Segment:         field(ColSegment),
			Tags:            field(ColTags),
			BasePriority:    field(ColBasePriority),
			ConfidenceLevel: field(ColConfidenceLevel),
			Source:          field(ColSource),
		})
	}

	return rows, nil
}

// ParseFile reads the fair CSV at path and builds one record per row, in
// file order. Any malformed row fails the whole call.
func ParseFile(path string) ([]model.EventRecord, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return BuildRecords(rows)
}

// BuildRecords converts rows in order, stopping at the first error.
func BuildRecords(rows []Row) ([]model.EventRecord, error) {
	records := make([]model.EventRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := BuildRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// BuildRecord classifies and slugs a single row.
func BuildRecord(row Row) (model.EventRecord, error) {
	date, err := time.Parse(DateLayout, row.Date)
	if err != nil {
		return model.EventRecord{}, &ParseError{Line: row.Line, Column: ColDate, Value: row.Date, Err: err}
	}

	basePriority, err := parseInt(row, ColBasePriority, row.BasePriority)
	if err != nil {
		return model.EventRecord{}, err
	}
	confidence, err := parseInt(row, ColConfidenceLevel, row.ConfidenceLevel)
	if err != nil {
		return model.EventRecord{}, err
	}

	rec := model.EventRecord{
		Name:            row.Name,
		Slug:            util.Slugify(fmt.Sprintf("%s-%s-%d", row.Name, row.City, date.Year())),
		Description:     fmt.Sprintf("%s em %s/%s. Segmento: %s", row.EventKind, row.City, row.State, row.Segment),
		EventType:       classify.EventType(row.Segment),
		Date:            row.Date,
		IsRecurring:     false,
		Recurrence:      model.RecurrenceNone,
		Country:         model.CountryBrazil,
		Segments:        classify.Segments(row.Segment, row.Tags),
		Tags:            SplitTags(row.Tags),
		BasePriority:    basePriority,
		ConfidenceLevel: confidence,
		Source:          row.Source,
		Status:          model.StatusActive,
	}

	if row.State == model.SentinelInternational {
		rec.Country = model.CountryInternational
	} else {
		state := row.State
		rec.State = &state
	}
	if row.City != model.SentinelCityTBD {
		city := row.City
		rec.City = &city
	}

	return rec, nil
}

// SplitTags splits a pipe-delimited tag list, trimming each tag and
// dropping empties. It never returns nil.
func SplitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, TagSeparator) {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func parseInt(row Row, column, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ParseError{Line: row.Line, Column: column, Value: value, Err: err}
	}
	return n, nil
}
