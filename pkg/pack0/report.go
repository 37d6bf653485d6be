// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import "encoding/json"

// GapKind classifies a compliance finding.
type GapKind string

const (
	GapMissingPath     GapKind = "missing_path"
	GapMissingSection  GapKind = "missing_section"
	GapMissingTrace    GapKind = "missing_trace"
	GapValidationError GapKind = "validation_error"
)

// Gap is one recorded compliance finding. Internally it is a tagged
// pair; the "kind::detail" wire string exists only at the report
// boundary.
type Gap struct {
	Kind   GapKind
	Detail string
}

func (g Gap) String() string {
	return string(g.Kind) + "::" + g.Detail
}

// Meta holds the identity fields read from the pack manifest. Both
// fields default to empty strings when the manifest is absent or
// unparsable; they are never omitted from the report.
type Meta struct {
	PackID  string `json:"pack_id"`
	Version string `json:"version"`
}

// Report is the outcome of one validation. Gaps preserve the order in
// which checks ran; CheckedPaths and CheckedSections record every
// path and section that was actually evaluated, whether or not it
// produced a gap. Invariant: Ok is true iff Gaps is empty.
type Report struct {
	Ok              bool
	Gaps            []Gap
	CheckedPaths    []string
	CheckedSections []string
	Meta            Meta
}

// GapStrings returns the wire form of every gap, in check order.
func (r *Report) GapStrings() []string {
	out := make([]string, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		out = append(out, g.String())
	}
	return out
}

// wireReport is the serialized report shape. Empty slices marshal as
// [] rather than null so consumers can iterate without nil checks.
type wireReport struct {
	Ok              bool     `json:"ok"`
	Gaps            []string `json:"gaps"`
	CheckedPaths    []string `json:"checked_paths"`
	CheckedSections []string `json:"checked_sections"`
	Meta            Meta     `json:"meta"`
}

// MarshalJSON serializes the report in its wire form, collapsing each
// gap to "kind::detail".
func (r *Report) MarshalJSON() ([]byte, error) {
	w := wireReport{
		Ok:              r.Ok,
		Gaps:            r.GapStrings(),
		CheckedPaths:    r.CheckedPaths,
		CheckedSections: r.CheckedSections,
		Meta:            r.Meta,
	}
	if w.CheckedPaths == nil {
		w.CheckedPaths = []string{}
	}
	if w.CheckedSections == nil {
		w.CheckedSections = []string{}
	}
	return json.Marshal(w)
}
