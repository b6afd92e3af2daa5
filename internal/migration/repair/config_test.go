package repair

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTargets(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repair_targets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadTargets(t *testing.T) {
	path := writeTargets(t, `
targets:
  - dest_course_id: course-1
    source_title: Algorithms
    source_ids:
      - legacy-algo
      - legacy-algo-v2
  - dest_course_id: course-2
    source_title: System Design
`)

	targets, err := LoadTargets(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(targets) != 2 {
		t.Fatalf("got %d targets, want 2", len(targets))
	}
	if targets[0].DestCourseID != "course-1" || targets[0].SourceTitle != "Algorithms" {
		t.Fatalf("unexpected first target: %+v", targets[0])
	}
	if !targets[0].MatchesID("legacy-algo-v2") {
		t.Fatalf("id alias not matched")
	}
	if targets[0].MatchesID("unknown") {
		t.Fatalf("unknown id must not match")
	}
	if targets[1].MatchesID("anything") {
		t.Fatalf("target without source_ids must not match by id")
	}
}

func TestLoadTargetsValidation(t *testing.T) {
	if _, err := LoadTargets(writeTargets(t, `targets: []`)); err == nil {
		t.Fatalf("expected error for empty targets")
	}
	if _, err := LoadTargets(writeTargets(t, "targets:\n  - source_title: Orphan\n")); err == nil {
		t.Fatalf("expected error for missing dest_course_id")
	}
	if _, err := LoadTargets(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
