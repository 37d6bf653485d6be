// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package pack0

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// maxDocBytes caps how much of a single pack document is read. Packs
// are documentation bundles; anything larger is not a document this
// gate should be inspecting.
const maxDocBytes = 8 << 20

// Source provides uniform read access to a pack, whether it is laid
// out as a directory tree or packaged as a zip archive. All paths are
// relative POSIX paths.
type Source interface {
	// Name returns the base name of the pack root. It is used as the
	// module key fallback for packs without a manifest.
	Name() string

	// Exists reports whether the entry exists in the pack.
	Exists(rel string) bool

	// ReadText returns the UTF-8 text of the entry. The second return
	// is false when the entry does not exist or cannot be read;
	// malformed byte sequences are sanitized, never an error. A
	// garbled document degrades to weak content, not an abort.
	ReadText(rel string) (string, bool)

	// Close releases any resources held by the source.
	Close() error
}

// Open selects a Source implementation for path: a directory source
// when path is a directory, a zip source otherwise. This is the one
// fatal failure point of a validation: a root that does not exist or
// an archive that cannot be opened is an error, not a gap.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening pack %s: %w", path, err)
	}
	if info.IsDir() {
		return &dirSource{root: path}, nil
	}
	return openZipSource(path)
}

// dirSource reads a pack laid out as a directory tree.
type dirSource struct {
	root string
}

func (s *dirSource) Name() string {
	return filepath.Base(filepath.Clean(s.root))
}

func (s *dirSource) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(rel)))
	return err == nil
}

func (s *dirSource) ReadText(rel string) (string, bool) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", false
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxDocBytes))
	if err != nil {
		return "", false
	}
	return sanitizeUTF8(data), true
}

func (s *dirSource) Close() error { return nil }

// zipSource reads a pack packaged as a single zip archive. The entry
// index is built once at open time.
type zipSource struct {
	rc      *zip.ReadCloser
	name    string
	entries map[string]*zip.File
}

func openZipSource(path string) (*zipSource, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening pack %s: %w", path, err)
	}
	entries := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		entries[f.Name] = f
	}
	// Strip the archive extension so a pack named pack0-x.zip resolves
	// the same module key as a directory named pack0-x.
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return &zipSource{rc: rc, name: name, entries: entries}, nil
}

func (s *zipSource) Name() string { return s.name }

func (s *zipSource) Exists(rel string) bool {
	_, ok := s.entries[rel]
	return ok
}

func (s *zipSource) ReadText(rel string) (string, bool) {
	f, ok := s.entries[rel]
	if !ok {
		return "", false
	}
	r, err := f.Open()
	if err != nil {
		return "", false
	}
	defer r.Close()
	data, err := io.ReadAll(io.LimitReader(r, maxDocBytes))
	if err != nil {
		return "", false
	}
	return sanitizeUTF8(data), true
}

func (s *zipSource) Close() error { return s.rc.Close() }

// sanitizeUTF8 replaces invalid byte sequences with the replacement
// rune instead of failing the read.
func sanitizeUTF8(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
