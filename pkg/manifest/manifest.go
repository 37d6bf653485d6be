// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package manifest models the identity sidecar every generated pack
// carries at 02_INVENTORY/manifest.json.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pack-factory/pkg/fileutil"
)

// Path is the manifest location inside a pack.
const Path = "02_INVENTORY/manifest.json"

// Manifest declares a pack's identity and inventory.
type Manifest struct {
	PackID      string            `json:"pack_id"`
	Version     string            `json:"version"`
	Modules     []string          `json:"modules"`
	Entrypoints []string          `json:"entrypoints"`
	TraceID     string            `json:"trace_id"`
	CreatedAt   string            `json:"created_at"`
	Checksums   map[string]string `json:"checksums,omitempty"`
}

// New builds a manifest for a pack. An empty traceID gets a fresh
// UUID so every generated pack stays traceable.
func New(packID, version string, modules, entrypoints []string, traceID string) Manifest {
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return Manifest{
		PackID:      packID,
		Version:     version,
		Modules:     modules,
		Entrypoints: entrypoints,
		TraceID:     traceID,
		CreatedAt:   fileutil.UTCNowISO(),
	}
}

// Write computes sha256 checksums for the entrypoints that exist under
// packRoot and writes the manifest atomically at its well-known path.
func Write(packRoot string, m Manifest) error {
	if m.Checksums == nil {
		m.Checksums = make(map[string]string, len(m.Entrypoints))
	}
	for _, ep := range m.Entrypoints {
		p := filepath.Join(packRoot, filepath.FromSlash(ep))
		if !fileutil.FileExists(p) {
			continue
		}
		sum, err := fileutil.SHA256File(p)
		if err != nil {
			return fmt.Errorf("hashing %s: %w", ep, err)
		}
		m.Checksums[ep] = sum
	}
	return fileutil.AtomicWriteJSON(filepath.Join(packRoot, filepath.FromSlash(Path)), m)
}

// Load reads the manifest from a pack directory.
func Load(packRoot string) (Manifest, error) {
	var m Manifest
	path := filepath.Join(packRoot, filepath.FromSlash(Path))
	if err := fileutil.ReadJSON(path, &m); err != nil {
		return Manifest{}, fmt.Errorf("loading manifest: %w", err)
	}
	return m, nil
}
