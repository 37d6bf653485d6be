// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// writePack materializes files (relative POSIX path -> content) under
// a fresh temp directory named dirName and returns the pack root.
func writePack(t *testing.T, dirName string, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), dirName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// zipPack writes files into a zip archive named zipName and returns
// its path. Entries are written in sorted order.
func zipPack(t *testing.T, zipName string, files map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), zipName)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	names := make([]string, 0, len(files))
	for rel := range files {
		names = append(names, rel)
	}
	sort.Strings(names)
	for _, rel := range names {
		fw, err := w.Create(rel)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte(files[rel])); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// fullPlan returns a plan document with every required section heading
// and one id of each trace category.
func fullPlan() string {
	var b strings.Builder
	for _, sec := range RequiredSections {
		b.WriteString("## " + sec + "\n\nconteúdo.\n\n")
	}
	b.WriteString("Rastreado por RF-1, RNF-1 e UC-1.\n")
	return b.String()
}

// compliantFiles returns a pack content set that passes every baseline
// check.
func compliantFiles() map[string]string {
	files := map[string]string{
		"docs/PLAN.md":                fullPlan(),
		"docs/PROMPT_CONTINUIDADE.md": "# Continuidade\n",
		"docs/TROUBLESHOOTING.md":     "# Troubleshooting\n",
		"docs/DEFINITION_OF_DONE.md":  "# DoD\n",
		"runbooks/HOW_TO_RUN.md":      "# Run\n",
		"runbooks/HOW_TO_DEPLOY.md":   "# Deploy\n",
		"runbooks/HOW_TO_ROLLBACK.md": "# Rollback\n",
		"contracts/README.json":       `{"schema_version":"1.0"}`,
	}
	return files
}

// meetcoreFiles returns a fully green meetcore pack content set.
func meetcoreFiles() map[string]string {
	files := compliantFiles()
	files["02_INVENTORY/manifest.json"] = `{"pack_id":"pack0-meetcore","version":"1.2.0"}`
	files["docs/MEETCORE_SLICES.md"] = "# Slices\n\n- PEC1.01 streaming\n"
	files["docs/PERFORMANCE_BUDGETS.md"] = "Streaming: 300 ms primeiro token\n"
	files["docs/DATA_RETENTION_MATRIX.md"] = "Culture: 24m\nPeople: 24m\nPipeline: 12m\n"
	return files
}

// fakeSource is an in-memory Source for exercising stages directly.
type fakeSource struct {
	name  string
	files map[string]string
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Exists(rel string) bool {
	_, ok := f.files[rel]
	return ok
}

func (f *fakeSource) ReadText(rel string) (string, bool) {
	text, ok := f.files[rel]
	return text, ok
}

func (f *fakeSource) Close() error { return nil }

// hasGap reports whether the report contains the given wire-form gap.
func hasGap(r *Report, wire string) bool {
	for _, g := range r.Gaps {
		if g.String() == wire {
			return true
		}
	}
	return false
}
