package idmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestPutIsMonotonic(t *testing.T) {
	m := New()
	first := uuid.New()
	second := uuid.New()

	m.Put("legacy-1", first)
	m.Put("legacy-1", second)

	got, ok := m.Get("legacy-1")
	if !ok {
		t.Fatalf("entry missing")
	}
	if got != first {
		t.Fatalf("entry was reassigned: got %s, want %s", got, first)
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
}

func TestGetUnmapped(t *testing.T) {
	m := New()
	if _, ok := m.Get("never-seen"); ok {
		t.Fatalf("expected miss for unmapped id")
	}
}

func TestPersistRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id_map.json")

	m := New()
	a := uuid.New()
	b := uuid.New()
	m.Put("legacy-a", a)
	m.Put("legacy-b", b)

	if err := m.Persist(path); err != nil {
		t.Fatalf("persist: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("len = %d, want 2", loaded.Len())
	}
	if got, _ := loaded.Get("legacy-a"); got != a {
		t.Fatalf("legacy-a: got %s, want %s", got, a)
	}
	if got, _ := loaded.Get("legacy-b"); got != b {
		t.Fatalf("legacy-b: got %s, want %s", got, b)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id_map.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed artifact")
	}
}
