package finance

import "encoding/json"

// InvestmentTypes is the set of instrument kinds the tracker knows how
// to label. The type is informational only; no valuation logic hangs
// off it.
var InvestmentTypes = []string{
	"Renda Fixa",
	"Renda Variável",
	"Tesouro Direto",
	"Fundos Imobiliários",
	"Criptomoedas",
	"Outro",
}

// Investment is a principal placed into an instrument, tracked against
// its current value.
type Investment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Value        Money  `json:"value"` // initial principal
	InitialDate  Date   `json:"initialDate"`
	CurrentValue Money  `json:"currentValue"`
	// Growth is derived from Value and CurrentValue; it is persisted for
	// display convenience but never set independently.
	Growth Percent `json:"growth"`
}

// NewInvestment creates a new Investment. The current value defaults to
// the principal and growth starts at zero.
func NewInvestment(id, name, typ string, value Money, initialDate Date) Investment {
	return Investment{
		ID:           id,
		Name:         name,
		Type:         typ,
		Value:        value,
		InitialDate:  initialDate,
		CurrentValue: value,
		Growth:       0,
	}
}

// Revalued returns a copy of the investment with the current value
// replaced and growth recomputed as (new - principal) / principal * 100.
// This is the only way growth changes.
func (i Investment) Revalued(newValue Money) Investment {
	i.CurrentValue = newValue
	i.Growth = newValue.GrowthFrom(i.Value)
	return i
}

func (i Investment) Equal(o Investment) bool {
	return i.ID == o.ID &&
		i.Name == o.Name &&
		i.Type == o.Type &&
		i.Value.Equal(o.Value) &&
		i.InitialDate == o.InitialDate &&
		i.CurrentValue.Equal(o.CurrentValue) &&
		i.Growth.Equal(o.Growth)
}

// MarshalJSON implements the json.Marshaler interface for Investment
// with a canonical field order.
func (i Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("name", i.Name)
	w.Append("type", i.Type)
	w.Append("value", i.Value)
	w.Append("initialDate", i.InitialDate)
	w.Append("currentValue", i.CurrentValue)
	w.Append("growth", i.Growth)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes an investment defensively: records written
// before current-value tracking existed carry neither currentValue nor
// growth, so both default from the principal.
func (i *Investment) UnmarshalJSON(data []byte) error {
	type alias Investment // drop methods to avoid recursion
	var temp struct {
		alias
		CurrentValue *Money `json:"currentValue"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*i = Investment(temp.alias)
	if temp.CurrentValue == nil {
		i.CurrentValue = i.Value
		i.Growth = 0
	} else {
		i.CurrentValue = *temp.CurrentValue
		// growth is always rederived, never read back. Without a
		// principal there is nothing to grow from.
		i.Growth = 0
		if !i.Value.IsZero() {
			i.Growth = i.CurrentValue.GrowthFrom(i.Value)
		}
	}
	return nil
}

var _ json.Marshaler = Investment{}
var _ json.Unmarshaler = (*Investment)(nil)
