package dump

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrSourceUnavailable marks a missing or unparsable export artifact. No
// partial migration is attempted without the dump, so callers treat this as
// fatal.
var ErrSourceUnavailable = errors.New("source export unavailable")

// Load parses the export artifact at path. It has no side effects.
func Load(path string) (*Dump, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, path, err)
	}
	var d Dump
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrSourceUnavailable, path, err)
	}
	return &d, nil
}
