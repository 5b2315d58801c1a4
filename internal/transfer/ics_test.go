// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/fairimport/internal/model"
	"github.com/olegiv/fairimport/internal/testutil"
)

func TestEventUID(t *testing.T) {
	a := EventUID("agrishow-ribeirao-preto-2026")
	assert.Equal(t, a, EventUID("agrishow-ribeirao-preto-2026"))
	assert.NotEqual(t, a, EventUID("agrishow-ribeirao-preto-2027"))
	assert.Len(t, a, 36)
}

func TestWriteICS(t *testing.T) {
	records := sampleRecords(t)

	var buf bytes.Buffer
	require.NoError(t, newTestExporter().WriteICS(&buf, records))
	out := buf.String()

	assert.Contains(t, out, "PRODID:"+ICSProductID)
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20260427")
	assert.Contains(t, out, "DTEND;VALUE=DATE:20260428")
	assert.Contains(t, out, "CATEGORIES:tecnologia\r\nCATEGORIES:moda\r\n")
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR\r\n"))
	assert.Equal(t, strings.Count(out, "\n"), strings.Count(out, "\r\n"), "every line must end with CRLF")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 3)

	for i, ev := range events {
		assert.Equal(t, EventUID(records[i].Slug), ev.Id())
		summary := ev.GetProperty(ical.ComponentPropertySummary)
		require.NotNil(t, summary)
		assert.Equal(t, records[i].Name, summary.Value)
	}

	loc := events[0].GetProperty(ical.ComponentPropertyLocation)
	require.NotNil(t, loc)
	assert.Equal(t, "Ribeirão Preto/SP", loc.Value)

	loc = events[1].GetProperty(ical.ComponentPropertyLocation)
	require.NotNil(t, loc)
	assert.Equal(t, "SP", loc.Value, "null city falls back to the state")

	loc = events[2].GetProperty(ical.ComponentPropertyLocation)
	require.NotNil(t, loc)
	assert.Equal(t, "Las Vegas", loc.Value, "null state falls back to the city")
}

func TestWriteICS_NoLocation(t *testing.T) {
	rec := oharaRecord()
	rec.City = nil

	var buf bytes.Buffer
	require.NoError(t, newTestExporter().WriteICS(&buf, []model.EventRecord{rec}))
	assert.NotContains(t, buf.String(), "LOCATION")
}

func TestWriteICS_InvalidDate(t *testing.T) {
	rec := oharaRecord()
	rec.Date = "2026-13-01"

	err := newTestExporter().WriteICS(&bytes.Buffer{}, []model.EventRecord{rec})
	require.Error(t, err)
	assert.Contains(t, err.Error(), rec.Slug)
}

func TestWriteICSFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feiras.ics")
	require.NoError(t, newTestExporter().WriteICSFile(path, []model.EventRecord{oharaRecord()}))

	content := testutil.ReadFile(t, path)
	assert.True(t, strings.HasPrefix(content, "BEGIN:VCALENDAR"))
	assert.Contains(t, content, "UID:"+EventUID("o-hara-expo-las-vegas-2026"))
}
