package cmd

import (
	"testing"

	"github.com/dlemos/finance"
)

func TestParseAmount(t *testing.T) {
	m, err := parseAmount("350.75")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Equal(finance.M(350.75)) {
		t.Errorf("parseAmount(350.75) = %s", m)
	}

	for _, bad := range []string{"", "abc", "-10", "0"} {
		if _, err := parseAmount(bad); err == nil {
			t.Errorf("parseAmount(%q): got nil, want error", bad)
		}
	}
}

func TestParseOptionalAmount(t *testing.T) {
	for _, ok := range []string{"", "0", "12.5"} {
		if _, err := parseOptionalAmount(ok); err != nil {
			t.Errorf("parseOptionalAmount(%q): %v", ok, err)
		}
	}
	if _, err := parseOptionalAmount("-1"); err == nil {
		t.Error("parseOptionalAmount(-1): got nil, want error")
	}
}

func TestParseDay(t *testing.T) {
	day, err := parseDay("2026-08-15")
	if err != nil {
		t.Fatal(err)
	}
	if day != finance.NewDate(2026, 8, 15) {
		t.Errorf("parseDay = %s", day)
	}

	// empty defaults to today.
	day, err = parseDay("")
	if err != nil {
		t.Fatal(err)
	}
	if day != finance.Today() {
		t.Errorf("parseDay(\"\") = %s, want today", day)
	}

	if _, err := parseDay("15/08/2026"); err == nil {
		t.Error("parseDay(15/08/2026): got nil, want error")
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newID()
		if id == "" || seen[id] {
			t.Fatalf("newID() returned %q twice", id)
		}
		seen[id] = true
	}
}
