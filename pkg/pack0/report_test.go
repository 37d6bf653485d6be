// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"encoding/json"
	"testing"
)

func TestGap_WireForm(t *testing.T) {
	g := Gap{GapMissingPath, "docs/PLAN.md"}
	if g.String() != "missing_path::docs/PLAN.md" {
		t.Errorf("String = %q", g.String())
	}
}

func TestReport_MarshalJSONWireShape(t *testing.T) {
	r := &Report{
		Ok:              false,
		Gaps:            []Gap{{GapMissingSection, "Testes"}},
		CheckedPaths:    []string{"docs/PLAN.md"},
		CheckedSections: []string{"Testes"},
		Meta:            Meta{PackID: "pack0-x", Version: "1.0"},
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"ok", "gaps", "checked_paths", "checked_sections", "meta"} {
		if _, ok := wire[field]; !ok {
			t.Errorf("wire report missing field %q", field)
		}
	}
	gaps, ok := wire["gaps"].([]any)
	if !ok || len(gaps) != 1 || gaps[0] != "missing_section::Testes" {
		t.Errorf("gaps = %v, want [missing_section::Testes]", wire["gaps"])
	}
	meta, ok := wire["meta"].(map[string]any)
	if !ok || meta["pack_id"] != "pack0-x" || meta["version"] != "1.0" {
		t.Errorf("meta = %v", wire["meta"])
	}
}

func TestReport_MarshalJSONEmptySlices(t *testing.T) {
	data, err := json.Marshal(&Report{Ok: true})
	if err != nil {
		t.Fatal(err)
	}
	var wire struct {
		Gaps            []string `json:"gaps"`
		CheckedPaths    []string `json:"checked_paths"`
		CheckedSections []string `json:"checked_sections"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatal(err)
	}
	// Arrays, never null.
	if wire.Gaps == nil || wire.CheckedPaths == nil || wire.CheckedSections == nil {
		t.Errorf("wire = %s, want [] for empty slices", data)
	}
}
