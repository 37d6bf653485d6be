// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_DirAndZipParity(t *testing.T) {
	files := map[string]string{
		"docs/PLAN.md":          "# Plano\n",
		"contracts/README.json": "{}",
	}
	for name, path := range map[string]string{
		"dir": writePack(t, "pack0-x", files),
		"zip": zipPack(t, "pack0-x.zip", files),
	} {
		t.Run(name, func(t *testing.T) {
			src, err := Open(path)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer src.Close()

			if !src.Exists("docs/PLAN.md") {
				t.Error("Exists(docs/PLAN.md) = false")
			}
			if src.Exists("docs/NOPE.md") {
				t.Error("Exists(docs/NOPE.md) = true")
			}
			text, ok := src.ReadText("docs/PLAN.md")
			if !ok || text != "# Plano\n" {
				t.Errorf("ReadText = %q, %v", text, ok)
			}
			if _, ok := src.ReadText("docs/NOPE.md"); ok {
				t.Error("ReadText(missing) ok = true")
			}
			if src.Name() != "pack0-x" {
				t.Errorf("Name = %q, want pack0-x", src.Name())
			}
		})
	}
}

func TestOpen_MissingPathIsFatal(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Open(missing) err = nil, want error")
	}
}

func TestOpen_CorruptArchiveIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open(corrupt zip) err = nil, want error")
	}
}

func TestReadText_SanitizesInvalidUTF8(t *testing.T) {
	root := writePack(t, "pack0-x", nil)
	raw := append([]byte{0xff, 0xfe}, []byte("plano")...)
	if err := os.WriteFile(filepath.Join(root, "PLAN.md"), raw, 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	text, ok := src.ReadText("PLAN.md")
	if !ok {
		t.Fatal("ReadText ok = false")
	}
	if !strings.Contains(text, "plano") {
		t.Errorf("ReadText = %q, want to keep valid runes", text)
	}
	if !strings.Contains(text, "�") {
		t.Errorf("ReadText = %q, want replacement runes for invalid bytes", text)
	}
}

func TestZipSource_NameTrimsExtension(t *testing.T) {
	path := zipPack(t, "pack0-meetcore.zip", map[string]string{"docs/PLAN.md": "x"})
	src, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()
	if src.Name() != "pack0-meetcore" {
		t.Errorf("Name = %q, want pack0-meetcore", src.Name())
	}
}
