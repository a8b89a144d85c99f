package finance

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DisplayCurrency is the ISO code used to format amounts for display.
// Records themselves carry no currency: the tracker is single-currency
// and persists bare numbers.
const DisplayCurrency = "BRL"

// Money represents a monetary amount with exact decimal arithmetic.
type Money struct {
	value decimal.Decimal // as major unit value
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// M builds a Money from any numeric value.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the display currency descriptor, never nil.
func (m Money) currency() *money.Currency {
	return money.New(0, DisplayCurrency).Currency()
}

// String formats the amount with the display currency's symbol,
// fraction digits and separators.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// GrowthFrom returns the percentage growth of m relative to the base
// amount: (m - base) / base * 100. The base must not be zero.
func (m Money) GrowthFrom(base Money) Percent {
	ratio := m.value.Sub(base.value).Div(base.value).Mul(decimal.NewFromInt(100))
	return Percent(ratio.InexactFloat64())
}

// Ratio returns m divided by n as a float. n must not be zero.
func (m Money) Ratio(n Money) float64 {
	return m.value.Div(n.value).InexactFloat64()
}

// ShareOf returns which percentage of the total this amount represents,
// or 0 when the total is zero.
func (m Money) ShareOf(total Money) Percent {
	if total.IsZero() {
		return 0
	}
	ratio := m.value.Div(total.value).Mul(decimal.NewFromInt(100))
	return Percent(ratio.InexactFloat64())
}

// MarshalJSON persists the amount as a bare JSON number, the shape the
// tracker has always written. The bare-number form is configured once
// at package init.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON accepts a bare JSON number. Missing fields decode as
// zero through the usual encoding/json defaulting.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	m.value = d
	return nil
}

var _ json.Marshaler = (*Money)(nil)
var _ json.Unmarshaler = (*Money)(nil)
