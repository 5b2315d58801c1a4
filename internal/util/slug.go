// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides general-purpose utility functions including
// URL slug generation.
package util

import (
	"regexp"
	"strings"
)

var (
	// slugRegex matches every run of characters outside [a-z0-9]
	slugRegex = regexp.MustCompile(`[^a-z0-9]+`)
	// multipleHyphens matches multiple consecutive hyphens
	multipleHyphens = regexp.MustCompile(`-{2,}`)

	// accentFolder folds the fixed set of accented Latin vowels and the
	// cedilla-c. Anything outside this set is left for slugRegex to drop.
	accentFolder = strings.NewReplacer(
		"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
		"è", "e", "é", "e", "ê", "e", "ë", "e",
		"ì", "i", "í", "i", "î", "i", "ï", "i",
		"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
		"ù", "u", "ú", "u", "û", "u", "ü", "u",
		"ç", "c",
	)
)

// Slugify converts a string to a URL-friendly slug.
// It lowercases the input, folds accented vowels and ç to ASCII, replaces
// every other non-alphanumeric run with a single hyphen and trims hyphens
// from both ends. An input made only of punctuation yields "".
// Input is not normalized: a decomposed accent (a + U+0303) is not folded
// and its combining mark becomes a separator.
func Slugify(s string) string {
	result := strings.ToLower(s)
	result = accentFolder.Replace(result)

	result = slugRegex.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}
