package renderer

import (
	"fmt"
	"strings"

	"github.com/dlemos/finance"
)

// Summary renders the dashboard: headline aggregates and the expense
// breakdown by category.
func Summary(sum finance.Summary, categories []finance.CategoryTotal, on finance.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Summary on %s\n\n", on)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income | %s |\n", sum.Income)
	fmt.Fprintf(&b, "| Expenses | %s |\n", sum.Expenses)
	fmt.Fprintf(&b, "| Balance | %s |\n", sum.Balance)
	fmt.Fprintf(&b, "| Savings rate | %s |\n", sum.SavingsRate)
	fmt.Fprintf(&b, "| Invested | %s |\n", sum.TotalInvestments)
	fmt.Fprintf(&b, "| Transactions | %d |\n", sum.Transactions)
	fmt.Fprintf(&b, "| Goals | %d |\n", sum.Goals)
	fmt.Fprintf(&b, "| Pending payments | %d |\n", sum.PendingPayments)

	if len(categories) > 0 {
		fmt.Fprint(&b, "\n## Expenses by Category\n\n")
		fmt.Fprintln(&b, "| Category | Total | Share |")
		fmt.Fprintln(&b, "|:---|---:|---:|")
		for _, c := range categories {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", c.Category, c.Total, c.Share)
		}
	}

	return b.String()
}
