// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"fmt"
	"os"
)

var debugEnabled = os.Getenv("PACKFACTORY_DEBUG") != ""

// logf writes debug output to stderr when PACKFACTORY_DEBUG is set.
// The gate's normal output is the report itself; this sink exists for
// tracing stage decisions in the field.
func logf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "pack0: "+format+"\n", args...)
}
