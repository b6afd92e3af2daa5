package dump

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTimeString(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte(`"2023-11-04T12:30:45Z"`), &ft); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ft.Valid {
		t.Fatalf("expected valid time")
	}
	want := time.Date(2023, 11, 4, 12, 30, 45, 0, time.UTC)
	if !ft.Time.Equal(want) {
		t.Fatalf("got %v, want %v", ft.Time, want)
	}
}

func TestFlexTimeSecondsObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"plain", `{"seconds": 1699100000, "nanoseconds": 0}`},
		{"underscored", `{"_seconds": 1699100000, "_nanoseconds": 0}`},
	}
	want := time.Unix(1699100000, 0).UTC()

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ft FlexTime
			if err := json.Unmarshal([]byte(tc.in), &ft); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !ft.Valid || !ft.Time.Equal(want) {
				t.Fatalf("got %+v, want %v", ft, want)
			}
		})
	}
}

func TestFlexTimeEpochNumber(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte(`1699100000`), &ft); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ft.Valid || !ft.Time.Equal(time.Unix(1699100000, 0).UTC()) {
		t.Fatalf("got %+v", ft)
	}
}

func TestFlexTimeAbsent(t *testing.T) {
	for _, in := range []string{`null`, `""`, `{}`} {
		var ft FlexTime
		if err := json.Unmarshal([]byte(in), &ft); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if ft.Valid {
			t.Fatalf("expected absent for %s, got %v", in, ft.Time)
		}
		if ft.Ptr() != nil {
			t.Fatalf("expected nil pointer for %s", in)
		}
	}
}

func TestFlexTimeBadString(t *testing.T) {
	var ft FlexTime
	if err := json.Unmarshal([]byte(`"yesterday"`), &ft); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFlexInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{`42`, 42},
		{`"42"`, 42},
		{`null`, 0},
		{`""`, 0},
	}
	for _, tc := range cases {
		var fi FlexInt
		if err := json.Unmarshal([]byte(tc.in), &fi); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.in, err)
		}
		if fi.Int() != tc.want {
			t.Fatalf("unmarshal %s: got %d, want %d", tc.in, fi.Int(), tc.want)
		}
	}

	var fi FlexInt
	if err := json.Unmarshal([]byte(`"abc"`), &fi); err == nil {
		t.Fatalf("expected error for non-numeric string")
	}
}
