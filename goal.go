package finance

import (
	"encoding/json"
	"math"
	"time"
)

// Goal is a savings target with an optional recurring contribution.
type Goal struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	TargetAmount        Money     `json:"targetAmount"`
	CurrentAmount       Money     `json:"currentAmount"`
	MonthlyContribution Money     `json:"monthlyContribution"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewGoal creates a new Goal.
func NewGoal(id, name string, target, current, monthly Money, createdAt time.Time) Goal {
	return Goal{
		ID:                  id,
		Name:                name,
		TargetAmount:        target,
		CurrentAmount:       current,
		MonthlyContribution: monthly,
		CreatedAt:           createdAt,
	}
}

// Completed reports whether the goal has been reached. Completion is
// always derived, never stored.
func (g Goal) Completed() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns how much of the target has been saved, clamped to
// the 0-100% range for display.
func (g Goal) Progress() Percent {
	if g.TargetAmount.IsZero() {
		return 0
	}
	p := g.CurrentAmount.ShareOf(g.TargetAmount)
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// Remaining returns the amount still missing, never negative.
func (g Goal) Remaining() Money {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return M(0)
	}
	return r
}

// MonthsToTarget estimates how many monthly contributions are still
// needed to reach the target. It returns false when the goal has no
// positive monthly contribution to extrapolate from.
func (g Goal) MonthsToTarget() (int, bool) {
	if g.Completed() {
		return 0, true
	}
	if !g.MonthlyContribution.IsPositive() {
		return 0, false
	}
	months := math.Ceil(g.Remaining().Ratio(g.MonthlyContribution))
	return int(months), true
}

// Contributed returns a copy of the goal with the delta added to the
// current amount. Callers compute the copy from a fresh snapshot and
// pass it to Store.UpdateGoal; the current amount only ever grows
// through contributions.
func (g Goal) Contributed(delta Money) Goal {
	g.CurrentAmount = g.CurrentAmount.Add(delta)
	return g
}

func (g Goal) Equal(o Goal) bool {
	return g.ID == o.ID &&
		g.Name == o.Name &&
		g.TargetAmount.Equal(o.TargetAmount) &&
		g.CurrentAmount.Equal(o.CurrentAmount) &&
		g.MonthlyContribution.Equal(o.MonthlyContribution) &&
		g.CreatedAt.Equal(o.CreatedAt)
}

// MarshalJSON implements the json.Marshaler interface for Goal with a
// canonical field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("targetAmount", g.TargetAmount)
	w.Append("currentAmount", g.CurrentAmount)
	w.Append("monthlyContribution", g.MonthlyContribution)
	w.Append("createdAt", g.CreatedAt.Format(DatetimeFormat))
	return w.MarshalJSON()
}

var _ json.Marshaler = Goal{}
