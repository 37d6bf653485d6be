// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pack0 implements the compliance gate for documentation
// packs: a static, source-agnostic check that a pack carries the
// mandated artifacts, plan sections, and traceability ids before it is
// accepted. It never inspects whether the pack builds or its tests
// pass.
package pack0

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Well-known pack entries.
const (
	manifestPath = "02_INVENTORY/manifest.json"
	planPath     = "docs/PLAN.md"
)

// Validator runs the compliance gate. It holds only immutable rule
// data, so a single Validator is safe to share across goroutines; each
// Validate call is a pure function of its input pack.
type Validator struct {
	rules  []Rule
	traces map[string]traceCheck
}

// Option configures a Validator.
type Option func(*Validator)

// WithRules appends gating rules after the built-in set. Built-in
// rules keep priority when aliases collide.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		v.rules = append(v.rules, rules...)
	}
}

// New returns a Validator with the built-in gating rules and content
// trace checks.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:  DefaultRules(),
		traces: builtinTraceChecks(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate opens the pack at path (directory or zip archive) and runs
// every compliance stage, accumulating gaps. Only a pack root that
// cannot be opened at all is an error; every other finding lands in
// the report.
func (v *Validator) Validate(path string) (*Report, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return v.ValidateSource(src), nil
}

// ValidateSource runs the gate against an already opened source. The
// stage order is fixed: baseline existence, manifest meta, module
// gating, content traces, plan sections, trace ids. Gap order in the
// report follows this order.
func (v *Validator) ValidateSource(src Source) *Report {
	checkedPaths := slices.Clone(BaselinePaths)
	checkedSections := slices.Clone(RequiredSections)
	var gaps []Gap

	for _, rel := range BaselinePaths {
		if !src.Exists(rel) {
			gaps = append(gaps, Gap{GapMissingPath, rel})
		}
	}

	// Manifest metadata is optional and non-blocking; parse failures
	// leave the empty-string defaults in place.
	meta := parseManifest(src)

	key := moduleKey(meta, src.Name())
	logf("pack %s: module key %q", src.Name(), key)
	if rule, ok := v.ruleFor(key); ok {
		logf("applying gating rule %s", rule.ID)
		for _, rel := range rule.Paths {
			if !slices.Contains(checkedPaths, rel) {
				checkedPaths = append(checkedPaths, rel)
			}
			if !src.Exists(rel) {
				gaps = append(gaps, Gap{GapMissingPath, rel})
			}
		}
		if check, ok := v.traces[rule.ID]; ok {
			gaps = append(gaps, check(src)...)
		}
	}

	// The plan is loaded once; section and id checks share the text.
	plan, _ := src.ReadText(planPath)
	gaps = append(gaps, missingSections(plan, checkedSections)...)
	gaps = append(gaps, missingTraceIDs(plan)...)

	return &Report{
		Ok:              len(gaps) == 0,
		Gaps:            gaps,
		CheckedPaths:    checkedPaths,
		CheckedSections: checkedSections,
		Meta:            meta,
	}
}

// ruleFor returns the rule whose alias set contains key. At most one
// rule applies per validation; an empty key never matches.
func (v *Validator) ruleFor(key string) (Rule, bool) {
	if key == "" {
		return Rule{}, false
	}
	for _, r := range v.rules {
		if slices.Contains(r.Aliases, key) {
			return r, true
		}
	}
	return Rule{}, false
}

// ReadMeta opens the pack at path and returns its manifest identity
// fields without running the full gate.
func ReadMeta(path string) (Meta, error) {
	src, err := Open(path)
	if err != nil {
		return Meta{}, err
	}
	defer src.Close()
	return parseManifest(src), nil
}

// parseManifest reads 02_INVENTORY/manifest.json from the source.
// A missing or unparsable manifest yields empty-string defaults; the
// manifest is identity metadata, never itself a compliance finding.
func parseManifest(src Source) Meta {
	text, ok := src.ReadText(manifestPath)
	if !ok {
		return Meta{}
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		logf("manifest parse failed (ignored): %v", err)
		return Meta{}
	}
	return Meta{
		PackID:  stringField(raw, "pack_id"),
		Version: stringField(raw, "version"),
	}
}

// stringField returns the field as a string, tolerating manifests that
// declare numeric versions.
func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
