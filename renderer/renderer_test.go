package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/dlemos/finance"
)

func TestTransactions(t *testing.T) {
	list := []finance.Transaction{
		finance.NewTransaction("t1", "Salário", finance.M(5000), finance.NewDate(2026, 8, 1), "Salário", finance.Income),
		finance.NewTransaction("t2", "Mercado", finance.M(350.75), finance.NewDate(2026, 8, 3), "Alimentação", finance.Expense),
	}
	doc := Transactions(list)

	if !strings.HasPrefix(doc, "# Transactions\n") {
		t.Errorf("missing title:\n%s", doc)
	}
	for _, want := range []string{
		"| 2026-08-01 | Salário |",
		"| 2026-08-03 | Mercado |",
		// expenses render signed.
		finance.M(350.75).Neg().String(),
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}

	if doc := Transactions(nil); !strings.Contains(doc, "_No transactions yet._") {
		t.Errorf("empty list rendering:\n%s", doc)
	}
}

func TestSummary(t *testing.T) {
	sum := finance.Summary{
		Income:      finance.M(5000),
		Expenses:    finance.M(2500),
		Balance:     finance.M(2500),
		SavingsRate: 50,
	}
	categories := []finance.CategoryTotal{
		{Category: "Moradia", Total: finance.M(1800), Share: 72},
		{Category: "Alimentação", Total: finance.M(700), Share: 28},
	}
	doc := Summary(sum, categories, finance.NewDate(2026, 8, 28))

	for _, want := range []string{
		"# Summary on 2026-08-28",
		"| Savings rate | 50.00% |",
		"## Expenses by Category",
		"| Moradia |",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}

	// without expenses there is no breakdown section.
	doc = Summary(finance.Summary{}, nil, finance.NewDate(2026, 8, 28))
	if strings.Contains(doc, "Expenses by Category") {
		t.Errorf("empty breakdown still rendered:\n%s", doc)
	}
}

func TestInvestments(t *testing.T) {
	inv := finance.NewInvestment("i1", "CDB", "Renda Fixa", finance.M(5000), finance.NewDate(2026, 1, 1))
	inv = inv.Revalued(finance.M(5250))
	doc := Investments([]finance.Investment{inv}, finance.M(5000), finance.M(5250))

	for _, want := range []string{
		"| CDB | Renda Fixa | 2026-01-01 |",
		"+5.00%",
		"**Total**",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestGoals(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	list := []finance.Goal{
		finance.NewGoal("g1", "Reserva", finance.M(10000), finance.M(5000), finance.M(500), created),
		finance.NewGoal("g2", "Viagem", finance.M(3000), finance.M(3000), finance.M(0), created),
		finance.NewGoal("g3", "Carro", finance.M(50000), finance.M(1000), finance.M(0), created),
	}
	doc := Goals(list)

	for _, want := range []string{
		"| Reserva |", "| 10 |", // 5000 to go at 500 a month
		"| Viagem |", "| done |",
		"| Carro |", "| - |", // no contribution to extrapolate from
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestPayments(t *testing.T) {
	list := []finance.Payment{
		{ID: "p1", Description: "Aluguel", Amount: finance.M(1800), DueDay: 5, IsPaid: true},
		{ID: "p2", Description: "Internet", Amount: finance.M(99), DueDay: 20, CardName: "Nubank",
			IsInstallment: true, CurrentInstallment: 3, TotalInstallments: 12},
	}
	doc := Payments(list, finance.NewDate(2026, 8, 15))

	for _, want := range []string{
		"# Payments on 2026-08-15",
		"| paid |",
		"| pending |",
		"| Nubank | 3/12 |",
		"Still due: **" + finance.M(99).String() + "**",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestHistory(t *testing.T) {
	points := []finance.MonthlyPoint{
		{Month: finance.NewDate(2026, 7, 1), Income: finance.M(5000), Expenses: finance.M(2000)},
		{Month: finance.NewDate(2026, 8, 1)},
	}
	doc := History(points)

	for _, want := range []string{
		"Monthly History",
		"Jul 2026",
		"Aug 2026",
		finance.M(3000).String(),
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}
