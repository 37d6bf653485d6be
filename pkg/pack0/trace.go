// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"strings"
	"unicode"
)

// traceCheck runs free-text content assertions against module
// documents. Checks are keyed by rule ID and run only when that rule
// was applied.
type traceCheck func(src Source) []Gap

func builtinTraceChecks() map[string]traceCheck {
	return map[string]traceCheck{
		"meetcore": meetcoreTraceGaps,
	}
}

// meetcoreTraceGaps asserts the meetcore documents carry their trace
// markers: the PEC1.01 slice reference, the 300ms streaming budget,
// and the culture/people/pipeline retention rows. A document that
// cannot be loaded degrades the whole group to a single
// validation_error gap; an infrastructure failure in one enrichment
// group must not abort the rest of the report.
func meetcoreTraceGaps(src Source) []Gap {
	sliceDoc, okSlices := src.ReadText("docs/MEETCORE_SLICES.md")
	budgets, okBudgets := src.ReadText("docs/PERFORMANCE_BUDGETS.md")
	retention, okRetention := src.ReadText("docs/DATA_RETENTION_MATRIX.md")
	if !okSlices || !okBudgets || !okRetention {
		return []Gap{{GapValidationError, "meetcore_docs_read_failed"}}
	}

	var gaps []Gap
	if !strings.Contains(strings.ToLower(sliceDoc), "pec1.01") {
		gaps = append(gaps, Gap{GapMissingTrace, "meetcore_slices_PEC1_01_not_found"})
	}
	// Whitespace-insensitive so "300 ms" and "300ms" both pass.
	if !strings.Contains(stripSpace(strings.ToLower(budgets)), "300ms") {
		gaps = append(gaps, Gap{GapMissingTrace, "meetcore_budget_streaming_300ms_not_found"})
	}
	lowered := strings.ToLower(retention)
	if !strings.Contains(lowered, "culture") ||
		!strings.Contains(lowered, "people") ||
		!strings.Contains(lowered, "pipeline") {
		gaps = append(gaps, Gap{GapMissingTrace, "retention_matrix_culture_people_not_found"})
	}
	return gaps
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
