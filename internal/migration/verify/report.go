package verify

import (
	"encoding/json"
	"fmt"
	"os"
)

// EntityReport counts one entity type's verification outcomes. Errors is
// the full discrepancy list; console output echoes only a bounded prefix,
// the persisted artifact keeps everything.
type EntityReport struct {
	Total      int      `json:"total"`
	Missing    int      `json:"missing"`
	Mismatched int      `json:"mismatched"`
	Errors     []string `json:"errors"`
}

type ContentReport struct {
	PhasesChecked int      `json:"phases_checked"`
	TopicsChecked int      `json:"topics_checked"`
	Errors        []string `json:"errors"`
}

// Report is created fresh per verification run, never mutated afterwards,
// and persisted as the verification artifact.
type Report struct {
	Users    EntityReport  `json:"users"`
	Progress EntityReport  `json:"progress"`
	Courses  EntityReport  `json:"courses"`
	Content  ContentReport `json:"content"`
}

// Passed is the overall verdict: nothing missing and no content-structure
// discrepancies. Mismatched-but-present records are reported without
// failing the run, since organic post-migration activity legitimately
// drifts those fields.
func (r *Report) Passed() bool {
	return r.Users.Missing == 0 &&
		r.Progress.Missing == 0 &&
		r.Courses.Missing == 0 &&
		len(r.Content.Errors) == 0
}

func (r *Report) WriteFile(path string) error {
	raw, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode verification report: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write verification report %s: %w", path, err)
	}
	return nil
}
