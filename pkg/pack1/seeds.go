// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack1

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pack-factory/pkg/pack0"
)

// planDoc renders a PLAN.md skeleton carrying every mandated section
// heading plus one requirement, non-functional requirement, and use
// case id, so a freshly generated pack starts green on the gate.
func planDoc(module string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# PLAN — %s\n\n", module)
	for _, sec := range pack0.RequiredSections {
		fmt.Fprintf(&b, "## %s\n\nTODO: preencher.\n\n", sec)
		if sec == "Rastreabilidade" {
			b.WriteString("| ID | Caso de uso | Teste |\n|----|-------------|-------|\n| RF-1 | UC-1 | pendente |\n| RNF-1 | UC-1 | pendente |\n\n")
		}
	}
	return b.String()
}

// headerDoc renders a one-heading markdown skeleton.
func headerDoc(title, module, body string) string {
	return fmt.Sprintf("# %s — %s\n\n%s\n", title, module, body)
}

// seedDoc returns the starting content for a module-gated document.
// Documents the gate runs content-trace checks against are seeded with
// the traced content.
func seedDoc(base, module string) string {
	switch base {
	case "MEETCORE_SLICES.md":
		return "# MeetCore Slices\n\n- PEC1.01 — captura e streaming de reunião (thin-slice)\n- PEC1.02 — resumo pós-reunião\n"
	case "PERFORMANCE_BUDGETS.md":
		return "# Performance Budgets\n\n| Fluxo | Budget |\n|-------|--------|\n| Streaming (primeiro token) | 300 ms |\n"
	case "DATA_RETENTION_MATRIX.md":
		return "# Data Retention Matrix\n\n| Domínio | Retenção |\n|---------|----------|\n| Culture | 24 meses |\n| People | 24 meses |\n| Pipeline | 12 meses |\n"
	default:
		return fmt.Sprintf("# %s — %s\n\nTODO: preencher.\n", strings.TrimSuffix(base, ".md"), module)
	}
}

// serviceMainSrc is the Go thin-slice service skeleton: an echo
// handler reading one JSON event from stdin.
func serviceMainSrc() string {
	return `package main

import (
	"encoding/json"
	"os"
)

func handle(event map[string]any) map[string]any {
	return map[string]any{"ok": true, "echo": event}
}

func main() {
	var event map[string]any
	if err := json.NewDecoder(os.Stdin).Decode(&event); err != nil {
		os.Exit(1)
	}
	json.NewEncoder(os.Stdout).Encode(handle(event))
}
`
}

func serviceTestSrc() string {
	return `package main

import (
	"reflect"
	"testing"
)

func TestHandleEcho(t *testing.T) {
	event := map[string]any{"x": 1}
	out := handle(event)
	if out["ok"] != true {
		t.Errorf("ok = %v, want true", out["ok"])
	}
	if !reflect.DeepEqual(out["echo"], event) {
		t.Errorf("echo = %v, want %v", out["echo"], event)
	}
}
`
}
