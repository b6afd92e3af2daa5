package repair

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Target names one destination course whose content came out empty or
// mismatched, plus the predicates that locate the correct source subtree
// in the dump. SourceIDs lists every legacy id the course was known under;
// SourceTitle is the exact-title fallback.
type Target struct {
	DestCourseID string   `yaml:"dest_course_id"`
	SourceTitle  string   `yaml:"source_title"`
	SourceIDs    []string `yaml:"source_ids"`
}

func (t Target) MatchesID(legacyID string) bool {
	for _, id := range t.SourceIDs {
		if id == legacyID {
			return true
		}
	}
	return false
}

type config struct {
	Targets []Target `yaml:"targets"`
}

func LoadTargets(path string) ([]Target, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read repair targets %s: %w", path, err)
	}
	var cfg config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse repair targets %s: %w", path, err)
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("repair targets %s: no targets defined", path)
	}
	for i, t := range cfg.Targets {
		if t.DestCourseID == "" {
			return nil, fmt.Errorf("repair targets %s: target %d has no dest_course_id", path, i)
		}
	}
	return cfg.Targets, nil
}
