// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pack-factory/pkg/pack1"
)

func TestRunValidate_GreenPackJSON(t *testing.T) {
	dir, _, err := pack1.GeneratePack0("meetcore", t.TempDir(), "")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runValidate(&out, dir, true, ""))

	var wire struct {
		Ok   bool     `json:"ok"`
		Gaps []string `json:"gaps"`
		Meta struct {
			PackID string `json:"pack_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &wire))
	assert.True(t, wire.Ok)
	assert.Empty(t, wire.Gaps)
	assert.Equal(t, "pack0-meetcore", wire.Meta.PackID)
}

func TestRunValidate_GapsMapToSentinel(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "pack0-empty")
	require.NoError(t, os.MkdirAll(empty, 0o755))

	var out bytes.Buffer
	err := runValidate(&out, empty, false, "")
	assert.ErrorIs(t, err, errGapsFound)
	assert.Contains(t, out.String(), "Missing artifacts", "summary lists the gap groups")
}

func TestRunValidate_FatalOpenError(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, filepath.Join(t.TempDir(), "nope"), false, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errGapsFound)
}

func TestRunValidate_ExtraRulesFile(t *testing.T) {
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(rules, []byte(`
rules:
  - id: billing
    paths:
      - docs/BILLING_SLICES.md
`), 0o644))

	dir, _, err := pack1.GeneratePack0("billing", t.TempDir(), "")
	require.NoError(t, err)

	var out bytes.Buffer
	err = runValidate(&out, dir, false, rules)
	assert.ErrorIs(t, err, errGapsFound)
	assert.Contains(t, out.String(), "docs/BILLING_SLICES.md")
}

func TestRunValidate_BadRulesFileIsFatal(t *testing.T) {
	var out bytes.Buffer
	err := runValidate(&out, t.TempDir(), false, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errGapsFound)
}
