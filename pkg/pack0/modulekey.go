// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"regexp"
	"strings"
)

// packIDPrefix marks a manifest pack_id or pack root name as a Pack0
// identity, e.g. "pack0-meetcore".
const packIDPrefix = "pack0-"

var nonKeyRunes = regexp.MustCompile(`[^a-z0-9]+`)

// moduleKey resolves the canonical slug that decides which gating rule
// applies. The manifest pack_id wins; the pack root name is the
// fallback for manifest-less packs (second hyphen-delimited field);
// otherwise the key is empty and only the baseline set is enforced.
func moduleKey(meta Meta, rootName string) string {
	if strings.HasPrefix(meta.PackID, packIDPrefix) {
		return NormalizeKey(strings.TrimPrefix(meta.PackID, packIDPrefix))
	}
	if strings.HasPrefix(rootName, packIDPrefix) {
		parts := strings.Split(rootName, "-")
		if len(parts) > 1 {
			return NormalizeKey(parts[1])
		}
	}
	return ""
}

// NormalizeKey lowercases raw and collapses every maximal run of
// characters outside [a-z0-9] into a single hyphen, trimming hyphens
// at both ends. "LAI Connect!!" becomes "lai-connect". Alias matching
// is exact equality on the normalized form, so aliases never need to
// anticipate punctuation or casing variants.
func NormalizeKey(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	return strings.Trim(nonKeyRunes.ReplaceAllString(lowered, "-"), "-")
}
