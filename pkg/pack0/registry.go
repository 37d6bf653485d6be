// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BaselinePaths are the artifacts every pack must carry regardless of
// module. Relative POSIX paths, case-sensitive.
var BaselinePaths = []string{
	"docs/PLAN.md",
	"docs/PROMPT_CONTINUIDADE.md",
	"docs/TROUBLESHOOTING.md",
	"docs/DEFINITION_OF_DONE.md",
	"runbooks/HOW_TO_RUN.md",
	"runbooks/HOW_TO_DEPLOY.md",
	"runbooks/HOW_TO_ROLLBACK.md",
	"contracts/README.json",
}

// RequiredSections are the headings the plan document must declare:
// the SRS baseline set plus the pack lifecycle set. They are opaque
// data strings matched case-insensitively after whitespace collapsing.
var RequiredSections = []string{
	// SRS baseline
	"Introdução",
	"Propósito",
	"Escopo",
	"Características dos Usuários",
	"Referências",
	"Visão Geral do Produto",
	"Perspectiva do Produto",
	"Funcionalidades",
	"Ambiente Operacional",
	"Limitações",
	"Suposições e Dependências",
	"Requisitos Funcionais",
	"Requisitos Não Funcionais",
	"Casos de Uso",
	"Diagramas",
	"Rastreabilidade",

	// Pack lifecycle
	"Plano de Implementação",
	"Testes",
	"Aceite",
	"Rollout",
	"Rollback",
	"Definition of Done",
}

// Rule describes module-specific gating: extra required artifacts
// applied when the resolved module key equals one of the rule's
// aliases. Content-trace checks are registered separately by rule ID
// (see trace.go).
type Rule struct {
	// ID is the canonical module identifier.
	ID string `yaml:"id"`

	// Aliases are the normalized module keys the rule accepts.
	// Defaults to [ID] when empty.
	Aliases []string `yaml:"aliases"`

	// Paths are the extra required artifacts, merged into the checked
	// set and existence-checked like baseline paths.
	Paths []string `yaml:"paths"`
}

// DefaultRules returns the built-in gating rules. Callers get a fresh
// slice each time; the built-in set itself is never mutated.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:      "meetcore",
			Aliases: []string{"meetcore"},
			Paths: []string{
				"docs/MEETCORE_SLICES.md",
				"docs/PERFORMANCE_BUDGETS.md",
				"docs/DATA_RETENTION_MATRIX.md",
			},
		},
		{
			ID:      "connect",
			Aliases: []string{"lai-connect", "connect", "lai-connect-mvp"},
			Paths: []string{
				"docs/CONNECT_SLICES.md",
				"docs/DATA_RETENTION_MATRIX.md",
			},
		},
		{
			ID:      "app-lai",
			Aliases: []string{"app-lai", "app", "lai-app"},
			Paths: []string{
				"docs/APP_LAI_SLICES.md",
				"docs/DATA_RETENTION_MATRIX.md",
			},
		},
		{
			ID:      "culture-people",
			Aliases: []string{"culture-people", "culture", "lai-culture", "culture-and-people"},
			Paths: []string{
				"docs/CULTURE_PEOPLE_SLICES.md",
				"docs/DATA_RETENTION_MATRIX.md",
			},
		},
	}
}

// rulesFile is the on-disk shape of a gating rules overlay.
type rulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads extra gating rules from a YAML file. Decoding is
// strict (unknown keys are errors) so typos in rule files fail loudly
// instead of silently weakening the gate. Rules without aliases
// default to matching their own ID.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var rf rulesFile
	if err := dec.Decode(&rf); err != nil {
		return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
	}
	for i, r := range rf.Rules {
		if r.ID == "" {
			return nil, fmt.Errorf("rules file %s: rule %d has no id", path, i)
		}
		if len(r.Aliases) == 0 {
			rf.Rules[i].Aliases = []string{r.ID}
		}
	}
	return rf.Rules, nil
}
