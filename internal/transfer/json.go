// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/olegiv/fairimport/internal/model"
)

// WriteJSON writes records as one indented JSON array followed by a
// newline. Non-ASCII text is written as is, except U+2028 and U+2029 which
// encoding/json always escapes. HTML characters are not escaped.
func (e *Exporter) WriteJSON(w io.Writer, records []model.EventRecord) error {
	if records == nil {
		records = []model.EventRecord{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

// WriteJSONFile writes the JSON seed to path.
func (e *Exporter) WriteJSONFile(path string, records []model.EventRecord) error {
	if err := writeFile(path, func(w io.Writer) error { return e.WriteJSON(w, records) }); err != nil {
		return err
	}
	e.logger.Info("json seed written", "path", path, "records", len(records))
	return nil
}

// ReadJSON decodes a seed document produced by WriteJSON.
func ReadJSON(r io.Reader) ([]model.EventRecord, error) {
	var records []model.EventRecord
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding seed: %w", err)
	}
	return records, nil
}

// ReadJSONFile reads a seed document from path.
func ReadJSONFile(path string) ([]model.EventRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ReadJSON(bytes.NewReader(data))
}
