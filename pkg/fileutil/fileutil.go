// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fileutil holds the small filesystem helpers shared by the
// pack generators: atomic writes, hashing, tree copies, and zip
// packaging.
package fileutil

import (
	"archive/zip"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// UTCNowISO returns the current UTC time in ISO-8601 form without
// sub-second precision, e.g. "2026-02-18T12:34:56Z".
func UTCNowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05Z")
}

// EnsureDir creates path (and parents) if needed and returns it.
func EnsureDir(path string) (string, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FileSize returns the size of path in bytes, or 0 when it does not exist.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// ReadText returns the contents of path, or fallback when it does not
// exist or cannot be read.
func ReadText(path, fallback string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return string(data)
}

// WriteText writes text to path, creating parent directories as needed.
func WriteText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// AtomicWriteText writes text to a sibling temp file and renames it
// over path, so readers never observe a half-written file.
func AtomicWriteText(path, text string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// WriteJSON writes v to path as two-space indented JSON with a
// trailing newline.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteText(path, string(data)+"\n")
}

// AtomicWriteJSON is WriteJSON with AtomicWriteText semantics.
func AtomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return AtomicWriteText(path, string(data)+"\n")
}

// ReadJSON unmarshals the JSON file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// SHA256Bytes returns the hex sha256 digest of data.
func SHA256Bytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA256File returns the hex sha256 digest of the file at path,
// streaming so large files do not load into memory.
func SHA256File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ListFiles returns every regular file under root, sorted by path.
// A missing root yields an empty list.
func ListFiles(root string) ([]string, error) {
	if !FileExists(root) {
		return nil, nil
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// SafeRemove deletes path whether it is a file or a directory tree.
// A missing path is a no-op.
func SafeRemove(path string) error {
	if !FileExists(path) {
		return nil
	}
	return os.RemoveAll(path)
}

// CopyFile copies src to dst, creating parent directories as needed.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

// CopyTree replaces dst with a recursive copy of src. A missing src is
// a no-op.
func CopyTree(src, dst string) error {
	if !FileExists(src) {
		return nil
	}
	if err := SafeRemove(dst); err != nil {
		return err
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return CopyFile(path, target)
	})
}

// ZipDir writes a zip archive of every file under root to outPath.
// Entry names are root-relative POSIX paths and the walk order is
// sorted, so identical trees produce identical archives.
func ZipDir(root, outPath string) error {
	files, err := ListFiles(root)
	if err != nil {
		return fmt.Errorf("listing %s: %w", root, err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	w := zip.NewWriter(out)
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			w.Close()
			out.Close()
			return err
		}
		fw, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			w.Close()
			out.Close()
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			w.Close()
			out.Close()
			return err
		}
		if _, err := fw.Write(data); err != nil {
			w.Close()
			out.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
