// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command packfactory generates documentation packs and gates their
// release through the pack0 compliance validator.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes: 0 pack accepted / command succeeded, 1 validation found
// gaps, 2 fatal error (pack unreadable, bad flags).
const (
	exitOK    = 0
	exitGaps  = 1
	exitFatal = 2
)

// errGapsFound signals a validation that completed but found gaps.
// main maps it to exitGaps, distinct from fatal errors.
var errGapsFound = errors.New("pack has compliance gaps")

func main() {
	err := newRootCmd().Execute()
	switch {
	case err == nil:
		os.Exit(exitOK)
	case errors.Is(err, errGapsFound):
		os.Exit(exitGaps)
	default:
		os.Exit(exitFatal)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "packfactory",
		Short:        "Generate and gate documentation packs",
		SilenceUsage: true,
	}
	root.AddCommand(newValidateCmd(), newScaffoldCmd(), newManifestCmd())
	return root
}
