// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pack-factory/pkg/pack1"
)

func newScaffoldCmd() *cobra.Command {
	var (
		module  string
		outDir  string
		traceID string
	)
	cmd := &cobra.Command{
		Use:       "scaffold pack0|pack1",
		Short:     "Generate a skeleton pack for a module",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"pack0", "pack1"},
		RunE: func(cmd *cobra.Command, args []string) error {
			generate := pack1.GeneratePack0
			if args[0] == "pack1" {
				generate = pack1.Generate
			}
			dir, zipPath, err := generate(module, outDir, traceID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %s\npackaged %s\n", dir, zipPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&module, "module", "", "module name, e.g. meetcore")
	cmd.Flags().StringVar(&outDir, "out", "dist", "output directory")
	cmd.Flags().StringVar(&traceID, "trace-id", "", "trace id for the manifest (generated when empty)")
	cmd.MarkFlagRequired("module")
	return cmd
}
