// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// CalendarColumns is the header of the daily calendar CSV.
var CalendarColumns = []string{"data", "dia", "dia_semana", "eventos", "categorias", "tags"}

// CalendarRow is one event-grained row of the daily calendar.
// Several rows may share the same Date.
type CalendarRow struct {
	Date        string
	DayOfMonth  string
	WeekdayName string
	EventNames  string
	Categories  string
	Tags        string
}

// Fields returns the row in CSV column order.
func (r CalendarRow) Fields() []string {
	return []string{r.Date, r.DayOfMonth, r.WeekdayName, r.EventNames, r.Categories, r.Tags}
}
