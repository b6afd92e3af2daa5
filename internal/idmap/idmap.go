// Package idmap holds the persistent mapping from legacy identity-system
// ids to destination identity ids. The map is built incrementally during
// user migration, persisted as a JSON side-car artifact, and reloaded by
// the progress import and deep verification phases (possibly in a later
// run). Within a run it only grows; entries are never reassigned.
package idmap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

type Map struct {
	entries map[string]uuid.UUID
}

func New() *Map {
	return &Map{entries: make(map[string]uuid.UUID)}
}

// Load reads a previously persisted map. The artifact must exist; phases
// that can run without one start from New instead.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read id map %s: %w", path, err)
	}
	var entries map[string]uuid.UUID
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse id map %s: %w", path, err)
	}
	if entries == nil {
		entries = make(map[string]uuid.UUID)
	}
	return &Map{entries: entries}, nil
}

// Get is a pure lookup. An unmapped legacy id is an expected condition
// ("skip"), never an error.
func (m *Map) Get(legacyID string) (uuid.UUID, bool) {
	id, ok := m.entries[legacyID]
	return id, ok
}

// Put records a mapping. An existing entry for the same legacy id is left
// untouched so the map stays monotonic within a run.
func (m *Map) Put(legacyID string, destID uuid.UUID) {
	if _, exists := m.entries[legacyID]; exists {
		return
	}
	m.entries[legacyID] = destID
}

func (m *Map) Len() int { return len(m.entries) }

// Persist overwrites the side-car artifact with the full map.
func (m *Map) Persist(path string) error {
	raw, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode id map: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write id map %s: %w", path, err)
	}
	return nil
}
