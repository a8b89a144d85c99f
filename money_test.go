package finance

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a, b := M(0.1), M(0.2)
	// exact decimal arithmetic, no float drift.
	if got, want := a.Add(b), M(0.3); !got.Equal(want) {
		t.Errorf("0.1 + 0.2 = %s, want %s", got, want)
	}
	if got, want := M(100).Sub(M(300)), M(-200); !got.Equal(want) {
		t.Errorf("100 - 300 = %s, want %s", got, want)
	}
	if got := M(-1).Neg(); !got.Equal(M(1)) {
		t.Errorf("Neg(-1) = %s, want %s", got, M(1))
	}
}

func TestMoneyComparisons(t *testing.T) {
	if !M(0).IsZero() {
		t.Error("M(0).IsZero() = false")
	}
	if !M(5).IsPositive() || M(-5).IsPositive() {
		t.Error("IsPositive misclassified")
	}
	if !M(-5).IsNegative() || M(5).IsNegative() {
		t.Error("IsNegative misclassified")
	}
	if !M(1).LessThan(M(2)) || M(2).LessThan(M(1)) {
		t.Error("LessThan misclassified")
	}
	if !M(2).GreaterThanOrEqual(M(2)) || !M(3).GreaterThanOrEqual(M(2)) {
		t.Error("GreaterThanOrEqual misclassified")
	}
}

func TestMoneyGrowthFrom(t *testing.T) {
	if got, want := M(5250).GrowthFrom(M(5000)), Percent(5); !got.Equal(want) {
		t.Errorf("GrowthFrom = %s, want %s", got, want)
	}
	if got, want := M(4500).GrowthFrom(M(5000)), Percent(-10); !got.Equal(want) {
		t.Errorf("GrowthFrom = %s, want %s", got, want)
	}
}

func TestMoneyShareOf(t *testing.T) {
	if got, want := M(250).ShareOf(M(1000)), Percent(25); !got.Equal(want) {
		t.Errorf("ShareOf = %s, want %s", got, want)
	}
	// a zero total yields a zero share, never a division error.
	if got := M(250).ShareOf(M(0)); !got.Equal(0) {
		t.Errorf("ShareOf zero total = %s, want 0.00%%", got)
	}
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(M(1234.56))
	if err != nil {
		t.Fatal(err)
	}
	// amounts persist as bare numbers, not strings.
	if got, want := string(data), "1234.56"; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(M(1234.56)) {
		t.Errorf("round trip = %s", back)
	}
}
