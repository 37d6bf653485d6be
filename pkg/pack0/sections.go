// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import "strings"

// missingSections returns a gap for every required heading not found
// in the plan text. Both sides are lowercased and the plan has every
// whitespace run (including newlines) collapsed to a single space, so
// a heading wrapped across lines still matches. Matching is substring
// rather than whole-word: "Pre-Rollback" satisfies "Rollback". That
// looseness matches the gate's deployed behavior and is kept.
func missingSections(planText string, sections []string) []Gap {
	normalized := strings.ToLower(strings.Join(strings.Fields(planText), " "))
	var gaps []Gap
	for _, sec := range sections {
		if !strings.Contains(normalized, strings.ToLower(sec)) {
			gaps = append(gaps, Gap{GapMissingSection, sec})
		}
	}
	return gaps
}
