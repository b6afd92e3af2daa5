package dump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FlexTime decodes the timestamp encodings that coexist in the export:
// RFC3339 strings, epoch-seconds numbers, Firestore-style
// {"seconds": N, "nanoseconds": N} objects (with or without underscore
// prefixes), and null. Zero value means absent.
type FlexTime struct {
	Time  time.Time
	Valid bool
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = FlexTime{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*t = FlexTime{}
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
		*t = FlexTime{Time: parsed.UTC(), Valid: true}
		return nil
	case '{':
		var obj struct {
			Seconds      *int64 `json:"seconds"`
			Nanoseconds  *int64 `json:"nanoseconds"`
			USeconds     *int64 `json:"_seconds"`
			UNanoseconds *int64 `json:"_nanoseconds"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		secs := obj.Seconds
		if secs == nil {
			secs = obj.USeconds
		}
		if secs == nil {
			*t = FlexTime{}
			return nil
		}
		var nanos int64
		if obj.Nanoseconds != nil {
			nanos = *obj.Nanoseconds
		} else if obj.UNanoseconds != nil {
			nanos = *obj.UNanoseconds
		}
		*t = FlexTime{Time: time.Unix(*secs, nanos).UTC(), Valid: true}
		return nil
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("parse timestamp %s: %w", data, err)
		}
		sec := int64(f)
		nanos := int64((f - float64(sec)) * 1e9)
		*t = FlexTime{Time: time.Unix(sec, nanos).UTC(), Valid: true}
		return nil
	}
}

// Ptr returns the time for nullable destination columns, nil when absent.
func (t FlexTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	tt := t.Time
	return &tt
}

// FlexInt decodes integers that the legacy export stores either as numbers
// or as numeric strings.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*i = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("parse int %q: %w", s, err)
		}
		*i = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = FlexInt(n)
	return nil
}

func (i FlexInt) Int() int { return int(i) }
