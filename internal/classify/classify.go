// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package classify maps free-text segment labels from the fair CSV to the
// fixed event type enumeration and to lowercase segment tags.
//
// Both rule tables are ordered slices. Matching walks them in declaration
// order, so reordering entries changes results.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/olegiv/fairimport/internal/model"
)

// TypeRule maps an uppercase segment keyword to an event type.
type TypeRule struct {
	Keyword   string
	EventType model.EventType
}

// SegmentRule assigns Tag when any of Synonyms occurs in the lowercased segment.
type SegmentRule struct {
	Tag      string
	Synonyms []string
}

// DefaultEventType is returned when no type rule matches.
const DefaultEventType = model.EventTypeInstitutional

var typeRules = []TypeRule{
	{"AGROPECUÁRIO", model.EventTypeSeasonal},
	{"TECNOLOGIA", model.EventTypeInstitutional},
	{"SAÚDE", model.EventTypeInstitutional},
	{"MODA", model.EventTypeRetail},
	{"ALIMENTOS", model.EventTypeRetail},
	{"CONSTRUÇÃO", model.EventTypeInstitutional},
	{"AUTOMOTIVO", model.EventTypeRetail},
	{"BELEZA", model.EventTypeRetail},
	{"EDUCAÇÃO", model.EventTypeInstitutional},
	{"TURISMO", model.EventTypeSeasonal},
	{"CASA E DECORAÇÃO", model.EventTypeRetail},
	{"MÓVEIS", model.EventTypeRetail},
	{"ARTESANATO", model.EventTypeCultural},
	{"CULTURA POP", model.EventTypeCultural},
	{"ESPORTES", model.EventTypeCultural},
	{"GASTRONOMIA", model.EventTypeCultural},
	{"VAREJO", model.EventTypeRetail},
	{"LOGÍSTICA", model.EventTypeInstitutional},
	{"ENERGIA", model.EventTypeInstitutional},
	{"SUSTENTABILIDADE", model.EventTypeInstitutional},
}

// "ti" is a bare substring, so it fires inside words like "estética" too.
var segmentRules = []SegmentRule{
	{"varejo", []string{"varejo", "retail"}},
	{"supermercado", []string{"supermercado"}},
	{"tecnologia", []string{"tecnologia", "tech", "ti"}},
	{"saude", []string{"saúde", "hospitalar", "médico"}},
	{"agronegocio", []string{"agro", "agrícola"}},
	{"moda", []string{"moda", "fashion", "vestuário"}},
	{"alimentos", []string{"alimento", "bebida", "gastronomia"}},
	{"construcao", []string{"construção", "construcao"}},
	{"automotivo", []string{"automotivo", "veículo"}},
	{"beleza", []string{"beleza", "estética", "cosmético"}},
	{"educacao", []string{"educação", "educacao", "ensino"}},
	{"turismo", []string{"turismo", "viagem", "hotel"}},
}

// EventTypeRules returns a copy of the event type table in match order.
func EventTypeRules() []TypeRule {
	out := make([]TypeRule, len(typeRules))
	copy(out, typeRules)
	return out
}

// SegmentRules returns a copy of the segment tag table in match order.
func SegmentRules() []SegmentRule {
	out := make([]SegmentRule, len(segmentRules))
	for i, r := range segmentRules {
		out[i] = SegmentRule{Tag: r.Tag, Synonyms: append([]string(nil), r.Synonyms...)}
	}
	return out
}

// EventType returns the event type of the first keyword contained in the
// uppercased segment, or DefaultEventType when none is.
func EventType(segment string) model.EventType {
	upper := cases.Upper(language.BrazilianPortuguese).String(segment)

	for _, r := range typeRules {
		if strings.Contains(upper, r.Keyword) {
			return r.EventType
		}
	}
	return DefaultEventType
}

// Segments returns every segment tag whose synonyms occur in the lowercased
// segment, in table order. The result is never empty: with no match it is
// exactly [model.DefaultSegment]. tags is accepted for call-site symmetry
// with the CSV columns and is not consulted by the current rule set.
func Segments(segment, tags string) []string {
	_ = tags
	lower := cases.Lower(language.BrazilianPortuguese).String(segment)

	var out []string
	for _, r := range segmentRules {
		if containsAny(lower, r.Synonyms) {
			out = append(out, r.Tag)
		}
	}

	if len(out) == 0 {
		return []string{model.DefaultSegment}
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
