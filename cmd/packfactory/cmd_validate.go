// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pack-factory/pkg/pack0"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOut   bool
		rulesPath string
	)
	cmd := &cobra.Command{
		Use:   "validate <pack>",
		Short: "Run the compliance gate over a pack directory or zip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0], jsonOut, rulesPath)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the report as JSON")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML file with extra gating rules")
	return cmd
}

func runValidate(out io.Writer, packPath string, jsonOut bool, rulesPath string) error {
	var opts []pack0.Option
	if rulesPath != "" {
		rules, err := pack0.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		opts = append(opts, pack0.WithRules(rules...))
	}

	report, err := pack0.New(opts...).Validate(packPath)
	if err != nil {
		return err
	}

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	} else {
		printReport(out, report)
	}

	if !report.Ok {
		return errGapsFound
	}
	return nil
}

// printReport formats a human summary: gaps grouped by kind, then the
// audit counts.
func printReport(out io.Writer, r *pack0.Report) {
	byKind := map[pack0.GapKind][]string{}
	for _, g := range r.Gaps {
		byKind[g.Kind] = append(byKind[g.Kind], g.Detail)
	}
	printGapSection(out, "Missing artifacts", byKind[pack0.GapMissingPath])
	printGapSection(out, "Missing plan sections", byKind[pack0.GapMissingSection])
	printGapSection(out, "Missing traces", byKind[pack0.GapMissingTrace])
	printGapSection(out, "Validation errors", byKind[pack0.GapValidationError])

	if r.Ok {
		fmt.Fprintf(out, "✅ Pack accepted\n")
	} else {
		fmt.Fprintf(out, "\n❌ Pack rejected: %d gap(s)\n", len(r.Gaps))
	}
	fmt.Fprintf(out, "   - %d path(s) checked\n", len(r.CheckedPaths))
	fmt.Fprintf(out, "   - %d section(s) checked\n", len(r.CheckedSections))
	if r.Meta.PackID != "" {
		fmt.Fprintf(out, "   - pack_id %s version %s\n", r.Meta.PackID, r.Meta.Version)
	}
}

// printGapSection prints a labeled list when items is non-empty.
func printGapSection(out io.Writer, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(out, "\n⚠️  %s:\n", label)
	for _, item := range items {
		fmt.Fprintf(out, "  - %s\n", item)
	}
}
