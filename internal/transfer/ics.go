// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/olegiv/fairimport/internal/model"
)

// ICSProductID identifies this tool in generated calendars.
const ICSProductID = "-//fairimport//calendar 2026//PT"

const icsCalendarName = "Feiras e Eventos 2026"

// EventUID derives a stable VEVENT UID from a slug, so re-exporting the
// same fair keeps the same UID.
func EventUID(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:fairimport:"+slug)).String()
}

// WriteICS writes one all-day VEVENT per record, with one CATEGORIES
// line per segment tag.
func (e *Exporter) WriteICS(w io.Writer, records []model.EventRecord) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ICSProductID)
	cal.SetXWRCalName(icsCalendarName)

	stamp := e.now()
	for i := range records {
		r := &records[i]

		day, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return fmt.Errorf("event %s: invalid date %q: %w", r.Slug, r.Date, err)
		}

		event := cal.AddEvent(EventUID(r.Slug))
		event.SetDtStampTime(stamp)
		event.SetAllDayStartAt(day)
		event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		event.SetSummary(r.Name)
		event.SetDescription(r.Description)
		if loc := eventLocation(r); loc != "" {
			event.SetLocation(loc)
		}
		for _, segment := range r.Segments {
			event.AddProperty(ical.ComponentPropertyCategories, segment)
		}
		event.SetProperty(ical.ComponentPropertyStatus, "CONFIRMED")
	}

	return cal.SerializeTo(w, ical.WithNewLineWindows)
}

// WriteICSFile writes the iCalendar feed to path.
func (e *Exporter) WriteICSFile(path string, records []model.EventRecord) error {
	if err := writeFile(path, func(w io.Writer) error { return e.WriteICS(w, records) }); err != nil {
		return err
	}
	e.logger.Info("ics feed written", "path", path, "events", len(records))
	return nil
}

func eventLocation(r *model.EventRecord) string {
	city, state := r.CityValue(), r.StateValue()
	switch {
	case city != "" && state != "":
		return city + "/" + state
	case city != "":
		return city
	default:
		return state
	}
}
