package finance

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2026-08-15", NewDate(2026, 8, 15)},
		{"2026-8-5", NewDate(2026, 8, 5)},
		{" 2026-08-15 ", NewDate(2026, 8, 15)},
		{"2026-08-15T10:30:00Z", NewDate(2026, 8, 15)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDate("15/08/2026"); err == nil {
		t.Error("ParseDate(15/08/2026): got nil, want error")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := NewDate(2026, time.January, 31)
	if got, want := d.Add(1), NewDate(2026, time.February, 1); got != want {
		t.Errorf("Add(1) = %s, want %s", got, want)
	}
	if got, want := d.StartOfMonth(), NewDate(2026, time.January, 1); got != want {
		t.Errorf("StartOfMonth() = %s, want %s", got, want)
	}
	if got, want := NewDate(2026, time.February, 10).EndOfMonth(), NewDate(2026, time.February, 28); got != want {
		t.Errorf("EndOfMonth() = %s, want %s", got, want)
	}
	// leap year
	if got, want := NewDate(2028, time.February, 10).EndOfMonth(), NewDate(2028, time.February, 29); got != want {
		t.Errorf("EndOfMonth() leap = %s, want %s", got, want)
	}
	if got, want := NewDate(2026, time.January, 15).AddMonth(-2), NewDate(2025, time.November, 15); got != want {
		t.Errorf("AddMonth(-2) = %s, want %s", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	a, b := NewDate(2026, 3, 1), NewDate(2026, 3, 2)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %s vs %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %s vs %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, 8, 15)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `"2026-08-15"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
