// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pack-factory/pkg/pack0"
)

func newManifestCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "manifest <pack>",
		Short: "Show the identity a pack declares in its manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := pack0.ReadMeta(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(meta, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprintf(out, "pack_id: %s\nversion: %s\n", meta.PackID, meta.Version)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the meta as JSON")
	return cmd
}
