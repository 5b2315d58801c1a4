// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEventRecord_NullableValues(t *testing.T) {
	state := "SP"
	e := EventRecord{State: &state}

	if got := e.StateValue(); got != "SP" {
		t.Errorf("StateValue() = %q, want %q", got, "SP")
	}
	if got := e.CityValue(); got != "" {
		t.Errorf("CityValue() = %q, want empty", got)
	}
}

func TestEventRecord_JSONNulls(t *testing.T) {
	e := EventRecord{
		Name:     "Expo",
		Segments: []string{DefaultSegment},
		Tags:     []string{},
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	s := string(data)
	for _, want := range []string{`"state":null`, `"city":null`, `"event_type":""`, `"is_recurring":false`, `"base_priority":0`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}

func TestCalendarRow_Fields(t *testing.T) {
	r := CalendarRow{
		Date:        "2026-01-03",
		DayOfMonth:  "03",
		WeekdayName: "sábado",
		EventNames:  "Dia do Fotógrafo",
		Categories:  "cultural",
		Tags:        "foto",
	}

	got := r.Fields()
	if len(got) != len(CalendarColumns) {
		t.Fatalf("Fields() len = %d, want %d", len(got), len(CalendarColumns))
	}
	if got[0] != "2026-01-03" || got[5] != "foto" {
		t.Errorf("Fields() = %v", got)
	}
}
