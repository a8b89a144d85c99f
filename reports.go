package finance

import "sort"

// Summary is the dashboard view of a store: the headline aggregates
// computed in one pass, under one lock.
type Summary struct {
	Income           Money
	Expenses         Money
	Balance          Money
	SavingsRate      Percent
	TotalInvestments Money
	Transactions     int
	Goals            int
	PendingPayments  int
}

// Summarize computes the dashboard aggregates as of the given day. The
// reference day only affects the pending payment count.
func (s *Store) Summarize(on Date) Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	income := s.income()
	expenses := s.expenses()
	rate := s.savingsRate()
	invested := s.totalInvestments()

	pending := 0
	for _, p := range s.payments {
		if p.Status(on) != Paid {
			pending++
		}
	}

	return Summary{
		Income:           income,
		Expenses:         expenses,
		Balance:          income.Sub(expenses),
		SavingsRate:      rate,
		TotalInvestments: invested,
		Transactions:     len(s.transactions),
		Goals:            len(s.goals),
		PendingPayments:  pending,
	}
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Total    Money
	Share    Percent // of all expenses
}

// ExpensesByCategory groups expense transactions by category and
// returns the totals sorted by descending amount, category name
// breaking ties, so the breakdown is deterministic.
func (s *Store) ExpensesByCategory() []CategoryTotal {
	s.mu.Lock()
	defer s.mu.Unlock()

	byCategory := make(map[string]Money)
	for _, t := range s.transactions {
		if t.Type == Expense {
			byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
		}
	}

	total := s.expenses()
	result := make([]CategoryTotal, 0, len(byCategory))
	for cat, sum := range byCategory {
		var share Percent
		if !total.IsZero() {
			share = sum.ShareOf(total)
		}
		result = append(result, CategoryTotal{Category: cat, Total: sum, Share: share})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[j].Total.LessThan(result[i].Total)
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// MonthlyPoint is one month of the cash flow history.
type MonthlyPoint struct {
	Month    Date // first day of the month
	Income   Money
	Expenses Money
}

// Balance is the month's income minus its expenses.
func (p MonthlyPoint) Balance() Money { return p.Income.Sub(p.Expenses) }

// Label is the month's display label, e.g. "Jan 2026".
func (p MonthlyPoint) Label() string { return p.Month.Format("Jan 2006") }

// MonthlyHistory sums income and expenses per month over the trailing
// window ending at the month of the given day, oldest month first.
// Months with no transactions appear as zero points.
func (s *Store) MonthlyHistory(end Date, months int) []MonthlyPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	if months < 1 {
		return []MonthlyPoint{}
	}

	history := make([]MonthlyPoint, 0, months)
	month := end.StartOfMonth().AddMonth(1 - months)
	for i := 0; i < months; i++ {
		point := MonthlyPoint{Month: month}
		last := month.EndOfMonth()
		for _, t := range s.transactions {
			if t.Date.Before(month) || t.Date.After(last) {
				continue
			}
			switch t.Type {
			case Income:
				point.Income = point.Income.Add(t.Amount)
			case Expense:
				point.Expenses = point.Expenses.Add(t.Amount)
			}
		}
		history = append(history, point)
		month = month.AddMonth(1)
	}
	return history
}
