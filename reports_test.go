package finance

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	s := NewStore()
	day := NewDate(2026, 8, 15)
	for _, x := range []Transaction{
		txn("t1", 5000, NewDate(2026, 8, 1), Income),
		txn("t2", 1800, NewDate(2026, 8, 5), Expense),
		txn("t3", 700, NewDate(2026, 8, 10), Expense),
	} {
		if err := s.AddTransaction(x); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.AddInvestment(NewInvestment("i1", "CDB", "Renda Fixa", M(3000), NewDate(2026, 1, 1))); err != nil {
		t.Fatal(err)
	}
	if err := s.AddGoal(NewGoal("g1", "Reserva", M(15000), M(3000), M(500), time.Now().UTC())); err != nil {
		t.Fatal(err)
	}
	for _, p := range []Payment{
		{ID: "p1", Description: "Aluguel", Amount: M(1800), DueDay: 5, IsPaid: true},
		{ID: "p2", Description: "Internet", Amount: M(99), DueDay: 20},
		{ID: "p3", Description: "Luz", Amount: M(150), DueDay: 10},
	} {
		if err := s.AddPayment(p); err != nil {
			t.Fatal(err)
		}
	}

	sum := s.Summarize(day)
	if got, want := sum.Income, M(5000); !got.Equal(want) {
		t.Errorf("Income = %s, want %s", got, want)
	}
	if got, want := sum.Expenses, M(2500); !got.Equal(want) {
		t.Errorf("Expenses = %s, want %s", got, want)
	}
	if got, want := sum.Balance, M(2500); !got.Equal(want) {
		t.Errorf("Balance = %s, want %s", got, want)
	}
	if got, want := sum.SavingsRate, Percent(50); !got.Equal(want) {
		t.Errorf("SavingsRate = %s, want %s", got, want)
	}
	// the dashboard and the aggregate share one derivation.
	if got, want := sum.SavingsRate, s.SavingsRate(); !got.Equal(want) {
		t.Errorf("Summarize rate %s diverges from SavingsRate() %s", got, want)
	}
	if got, want := sum.TotalInvestments, M(3000); !got.Equal(want) {
		t.Errorf("TotalInvestments = %s, want %s", got, want)
	}
	if sum.Transactions != 3 || sum.Goals != 1 {
		t.Errorf("counts = %d transactions, %d goals", sum.Transactions, sum.Goals)
	}
	// p1 is paid; p2 and p3 are not, whatever their due day.
	if got := sum.PendingPayments; got != 2 {
		t.Errorf("PendingPayments = %d, want 2", got)
	}
}

func TestSummarizeRoundsSavingsRate(t *testing.T) {
	s := NewStore()
	if err := s.AddTransaction(txn("t1", 3000, NewDate(2026, 8, 1), Income)); err != nil {
		t.Fatal(err)
	}
	if err := s.AddTransaction(txn("t2", 2000, NewDate(2026, 8, 2), Expense)); err != nil {
		t.Fatal(err)
	}
	// 1000/3000 is 33.33..; the headline rate shows whole points.
	if got, want := s.SavingsRate(), Percent(33); !got.Equal(want) {
		t.Errorf("SavingsRate = %s, want %s", got, want)
	}
}

func TestExpensesByCategory(t *testing.T) {
	s := NewStore()
	day := NewDate(2026, 8, 1)
	for _, x := range []Transaction{
		NewTransaction("t1", "Mercado", M(600), day, "Alimentação", Expense),
		NewTransaction("t2", "Restaurante", M(200), day, "Alimentação", Expense),
		NewTransaction("t3", "Aluguel", M(1800), day, "Moradia", Expense),
		NewTransaction("t4", "Uber", M(200), day, "Transporte", Expense),
		NewTransaction("t5", "Salário", M(5000), day, "Salário", Income),
	} {
		if err := s.AddTransaction(x); err != nil {
			t.Fatal(err)
		}
	}

	got := s.ExpensesByCategory()
	want := []CategoryTotal{
		{Category: "Moradia", Total: M(1800)},
		{Category: "Alimentação", Total: M(800)},
		{Category: "Transporte", Total: M(200)},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Category != want[i].Category || !got[i].Total.Equal(want[i].Total) {
			t.Errorf("[%d] = %s %s, want %s %s", i, got[i].Category, got[i].Total, want[i].Category, want[i].Total)
		}
	}
	// 1800 of 2800
	if want := Percent(64.2857); !got[0].Share.Equal(want) {
		t.Errorf("Moradia share = %s, want %s", got[0].Share, want)
	}
}

func TestMonthlyHistory(t *testing.T) {
	s := NewStore()
	for _, x := range []Transaction{
		txn("t1", 5000, NewDate(2026, 6, 5), Income),
		txn("t2", 2000, NewDate(2026, 6, 20), Expense),
		txn("t3", 5000, NewDate(2026, 7, 5), Income),
		txn("t4", 3000, NewDate(2026, 8, 5), Expense),
		// outside the window
		txn("t5", 9999, NewDate(2026, 2, 1), Income),
	} {
		if err := s.AddTransaction(x); err != nil {
			t.Fatal(err)
		}
	}

	history := s.MonthlyHistory(NewDate(2026, 8, 28), 4)
	if len(history) != 4 {
		t.Fatalf("got %d points, want 4", len(history))
	}

	wantMonths := []Date{
		NewDate(2026, 5, 1), NewDate(2026, 6, 1), NewDate(2026, 7, 1), NewDate(2026, 8, 1),
	}
	for i, p := range history {
		if p.Month != wantMonths[i] {
			t.Errorf("[%d].Month = %s, want %s", i, p.Month, wantMonths[i])
		}
	}

	// May has no activity, June both sides, July income only, August expense only.
	if !history[0].Income.IsZero() || !history[0].Expenses.IsZero() {
		t.Errorf("May point not zero: %+v", history[0])
	}
	if got, want := history[1].Balance(), M(3000); !got.Equal(want) {
		t.Errorf("June balance = %s, want %s", got, want)
	}
	if got, want := history[2].Income, M(5000); !got.Equal(want) {
		t.Errorf("July income = %s, want %s", got, want)
	}
	if got, want := history[3].Balance(), M(-3000); !got.Equal(want) {
		t.Errorf("August balance = %s, want %s", got, want)
	}

	if got := s.MonthlyHistory(NewDate(2026, 8, 28), 0); len(got) != 0 {
		t.Errorf("zero-month history has %d points", len(got))
	}
}
