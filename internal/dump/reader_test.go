package dump

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "export.json", `{
		"users": [
			{"_id": "legacy-1", "email": "a@example.com", "totalPoints": 120}
		],
		"progress": [
			{"userId": "legacy-1", "problemId": "17", "status": "solved",
			 "timeSpent": 300, "solvedAt": {"seconds": 1699100000}}
		],
		"subscriptions": [
			{"_id": "legacy-1", "plan": "pro", "active": true, "startedAt": 1690000000}
		],
		"courses": [
			{"_id": "course-1", "title": "Algorithms", "phases": [
				{"_id": "phase-1", "title": "Basics", "topics": [
					{"_id": "topic-1", "title": "Arrays", "type": "reading"}
				]}
			]}
		],
		"exportedAt": "2023-11-04T00:00:00Z"
	}`)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(d.Users) != 1 || d.Users[0].Email != "a@example.com" {
		t.Fatalf("unexpected users: %+v", d.Users)
	}
	if got := d.Progress[0].ProblemID.Int(); got != 17 {
		t.Fatalf("problem id not normalized: got %d", got)
	}
	if d.Progress[0].SolvedAt.Ptr() == nil {
		t.Fatalf("solvedAt seconds object not decoded")
	}
	if !d.Subscriptions[0].StartedAt.Valid {
		t.Fatalf("startedAt epoch number not decoded")
	}
	if len(d.Courses) != 1 || len(d.Courses[0].Phases) != 1 || len(d.Courses[0].Phases[0].Topics) != 1 {
		t.Fatalf("course tree not preserved: %+v", d.Courses)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeFile(t, "broken.json", `{"users": [`)
	_, err := Load(path)
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestLoadProblems(t *testing.T) {
	bank := writeFile(t, "problems.json", `[
		{"id": 1, "title": "Two Sum", "difficulty": "easy"},
		{"id": "1001", "title": "Course Problem", "language": "python"}
	]`)

	problems, err := LoadProblems(bank, filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load problems: %v", err)
	}
	if len(problems) != 2 {
		t.Fatalf("got %d problems, want 2", len(problems))
	}
	if problems[1].ID.Int() != 1001 {
		t.Fatalf("string id not normalized: %+v", problems[1])
	}
}

func TestLoadProblemsCorrupt(t *testing.T) {
	bank := writeFile(t, "problems.json", `not json`)
	if _, err := LoadProblems(bank); err == nil {
		t.Fatalf("expected error for corrupt problem bank")
	}
}
