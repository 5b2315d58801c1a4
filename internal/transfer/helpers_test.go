// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package transfer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/olegiv/fairimport/internal/fairs"
	"github.com/olegiv/fairimport/internal/model"
	"github.com/olegiv/fairimport/internal/testutil"
)

var fixedNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// newTestExporter returns an exporter with a silent logger and a fixed clock.
func newTestExporter() *Exporter {
	e := NewExporter(testutil.DiscardLogger())
	e.SetClock(func() time.Time { return fixedNow })
	return e
}

// sampleRecords parses the shared fair fixture.
func sampleRecords(t *testing.T) []model.EventRecord {
	t.Helper()

	path := testutil.WriteFile(t, t.TempDir(), "fairs.csv", testutil.SampleFairsCSV)
	records, err := fairs.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	return records
}

func oharaRecord() model.EventRecord {
	return model.EventRecord{
		Name:            "O'Hara Expo",
		Slug:            "o-hara-expo-las-vegas-2026",
		Description:     "Convenção em Las Vegas/INTERNACIONAL. Segmento: Moda e Tecnologia",
		EventType:       model.EventTypeInstitutional,
		Date:            "2026-09-02",
		Recurrence:      model.RecurrenceNone,
		Country:         model.CountryInternational,
		City:            strPtr("Las Vegas"),
		Segments:        []string{"tecnologia", "moda"},
		Tags:            []string{},
		BasePriority:    5,
		ConfidenceLevel: 4,
		Source:          "ohara.example",
		Status:          model.StatusActive,
	}
}
