// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import "regexp"

// Trace id patterns: a category token followed by an optional single
// separator and one or more digits, e.g. "RF-12", "RNF 3", "UC_7".
// They run against the raw plan text, not the whitespace-collapsed
// form used for section matching.
var traceIDPatterns = []struct {
	label string
	re    *regexp.Regexp
}{
	{"RF", regexp.MustCompile(`(?i)\bRF[-_\s]?\d+`)},
	{"RNF", regexp.MustCompile(`(?i)\bRNF[-_\s]?\d+`)},
	{"UC", regexp.MustCompile(`(?i)\bUC[-_\s]?\d+`)},
}

// missingTraceIDs checks the plan text for at least one requirement or
// use-case id of each category. Each absent category produces its own
// gap.
func missingTraceIDs(planText string) []Gap {
	var gaps []Gap
	for _, p := range traceIDPatterns {
		if !p.re.MatchString(planText) {
			gaps = append(gaps, Gap{GapMissingTrace, p.label + "_ids_not_found"})
		}
	}
	return gaps
}
