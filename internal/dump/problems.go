package dump

import (
	"encoding/json"
	"fmt"
	"os"
)

// SourceProblem rows live outside the main export in the problem bank JSON
// files shipped with the legacy backend.
type SourceProblem struct {
	ID         FlexInt `json:"id"`
	Title      string  `json:"title"`
	Language   string  `json:"language"`
	Difficulty string  `json:"difficulty"`
	Category   string  `json:"category"`

	ProblemStatement string `json:"problemStatement"`
	InputFormat      string `json:"inputFormat"`
	OutputFormat     string `json:"outputFormat"`

	Examples  json.RawMessage `json:"examples"`
	TestCases json.RawMessage `json:"testCases"`
	Solution  json.RawMessage `json:"solution"`
	Hints     json.RawMessage `json:"hints"`
}

// LoadProblems merges the problem bank files in order. A missing or
// unreadable file contributes nothing; only a file that exists but cannot
// be parsed is an error, since that points at a corrupt artifact rather
// than an absent optional one.
func LoadProblems(paths ...string) ([]SourceProblem, error) {
	var all []SourceProblem
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var batch []SourceProblem
		if err := json.Unmarshal(raw, &batch); err != nil {
			return nil, fmt.Errorf("parse problem data %s: %w", path, err)
		}
		all = append(all, batch...)
	}
	return all, nil
}
