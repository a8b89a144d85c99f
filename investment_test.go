package finance

import (
	"encoding/json"
	"testing"
)

func TestNewInvestmentDefaults(t *testing.T) {
	inv := NewInvestment("i1", "CDB", "Renda Fixa", M(5000), NewDate(2026, 1, 15))
	if !inv.CurrentValue.Equal(inv.Value) {
		t.Errorf("CurrentValue = %s, want the principal %s", inv.CurrentValue, inv.Value)
	}
	if !inv.Growth.Equal(0) {
		t.Errorf("Growth = %s, want 0.00%%", inv.Growth)
	}
}

func TestInvestmentRevalued(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		current float64
		want    Percent
	}{
		{"gain", 5000, 5250, 5},
		{"loss", 5000, 4500, -10},
		{"flat", 5000, 5000, 0},
		{"doubled", 1000, 2000, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInvestment("i", "Teste", "Outro", M(tt.value), NewDate(2026, 1, 1))
			got := inv.Revalued(M(tt.current))
			if !got.Growth.Equal(tt.want) {
				t.Errorf("Revalued(%v).Growth = %s, want %s", tt.current, got.Growth, tt.want)
			}
			if !got.CurrentValue.Equal(M(tt.current)) {
				t.Errorf("Revalued(%v).CurrentValue = %s", tt.current, got.CurrentValue)
			}
			// the principal never moves.
			if !got.Value.Equal(M(tt.value)) {
				t.Errorf("Revalued changed the principal: %s", got.Value)
			}
		})
	}
}

func TestInvestmentDecodeLegacyRecord(t *testing.T) {
	// records written before current-value tracking carry neither
	// currentValue nor growth.
	raw := `{"id":"i1","name":"Tesouro Selic","type":"Tesouro Direto","value":3000,"initialDate":"2025-06-01"}`
	var inv Investment
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		t.Fatal(err)
	}
	if got, want := inv.CurrentValue, M(3000); !got.Equal(want) {
		t.Errorf("CurrentValue = %s, want the principal %s", got, want)
	}
	if !inv.Growth.Equal(0) {
		t.Errorf("Growth = %s, want 0.00%%", inv.Growth)
	}
}

func TestInvestmentDecodeRecomputesGrowth(t *testing.T) {
	// a tampered growth field is never trusted; it is rederived from the
	// principal and the current value.
	raw := `{"id":"i1","name":"CDB","type":"Renda Fixa","value":5000,"initialDate":"2025-06-01","currentValue":5250,"growth":99}`
	var inv Investment
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		t.Fatal(err)
	}
	if want := Percent(5); !inv.Growth.Equal(want) {
		t.Errorf("Growth = %s, want %s", inv.Growth, want)
	}
}

func TestInvestmentDecodeZeroPrincipal(t *testing.T) {
	// with no principal there is nothing to derive growth from; a
	// persisted growth value is discarded, not carried over.
	raw := `{"id":"i1","name":"Bonificação","type":"Outro","value":0,"initialDate":"2025-06-01","currentValue":100,"growth":42}`
	var inv Investment
	if err := json.Unmarshal([]byte(raw), &inv); err != nil {
		t.Fatal(err)
	}
	if !inv.Growth.Equal(0) {
		t.Errorf("Growth = %s, want 0.00%%", inv.Growth)
	}
	if got, want := inv.CurrentValue, M(100); !got.Equal(want) {
		t.Errorf("CurrentValue = %s, want %s", got, want)
	}
}
