// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// EventType is the top-level category of a calendar event.
type EventType string

// Event types
const (
	EventTypeSeasonal      EventType = "SEASONAL"
	EventTypeInstitutional EventType = "INSTITUTIONAL"
	EventTypeRetail        EventType = "RETAIL"
	EventTypeCultural      EventType = "CULTURAL"
)

// EventTypes lists every event type in enumeration order.
var EventTypes = []EventType{
	EventTypeSeasonal,
	EventTypeInstitutional,
	EventTypeRetail,
	EventTypeCultural,
}

// Fixed values for fields the fair source never varies.
const (
	RecurrenceNone = "NONE"
	StatusActive   = "ACTIVE"

	CountryBrazil        = "BR"
	CountryInternational = "INTL"

	// DefaultSegment is assigned when no segment rule matches.
	DefaultSegment = "geral"
)

// Sentinel values used by the fair CSV to mean "not applicable".
const (
	SentinelInternational = "INTERNACIONAL"
	SentinelCityTBD       = "A DEFINIR"
)

// EventRecord is a classified, slugged fair ready for export.
type EventRecord struct {
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	EventType       EventType `json:"event_type"`
	Date            string    `json:"date"` // YYYY-MM-DD, exactly as read
	IsRecurring     bool      `json:"is_recurring"`
	Recurrence      string    `json:"recurrence"`
	Country         string    `json:"country"`
	State           *string   `json:"state"`
	City            *string   `json:"city"`
	Segments        []string  `json:"segments"`
	Tags            []string  `json:"tags"`
	BasePriority    int       `json:"base_priority"`
	ConfidenceLevel int       `json:"confidence_level"`
	Source          string    `json:"source"`
	Status          string    `json:"status"`
}

// StateValue returns the state or "" when absent.
func (e EventRecord) StateValue() string {
	if e.State == nil {
		return ""
	}
	return *e.State
}

// CityValue returns the city or "" when absent.
func (e EventRecord) CityValue() string {
	if e.City == nil {
		return ""
	}
	return *e.City
}
