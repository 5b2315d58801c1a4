// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package fairs

import (
	"errors"
	"fmt"
)

// ErrMissingColumn is returned when the fair CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ParseError reports a malformed date or integer field. Line is the
// 1-based line number in the source file, header included.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
