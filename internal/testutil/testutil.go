// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package testutil provides shared test helpers and CSV fixtures.
package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// FairHeader is the header row of the fair CSV.
const FairHeader = "nome,data,tipo_evento,cidade,estado,segmento,tags,base_priority,confidence_level,fonte\n"

// SampleFairsCSV holds three fair rows covering the sentinel rules.
const SampleFairsCSV = FairHeader +
	"Agrishow,2026-04-27,Feira,Ribeirão Preto,SP,Agropecuário,agro|máquinas| ,9,8,agrishow.com.br\n" +
	"Hospitalar,2026-05-19,Feira,A DEFINIR,SP,Saúde e Hospitalar,saude|hospital,7,6,hospitalar.com\n" +
	"O'Hara Expo,2026-09-02,Convenção,Las Vegas,INTERNACIONAL,Moda e Tecnologia,,5,4,ohara.example\n"

// SampleCalendarCSV is a headerless legacy calendar with one short row.
const SampleCalendarCSV = "2026-01-01,01,quinta-feira,Confraternização Universal,feriado,ano-novo\n" +
	"2026-01-03,03,sábado,Dia do Fotógrafo,cultural,foto\n" +
	"2026-01-03,03,sábado,incompleta\n"

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WriteFile writes body to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
