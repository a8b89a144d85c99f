package renderer

import (
	"fmt"
	"strings"

	"github.com/dlemos/finance"
)

// Investments renders the portfolio with the invested and current
// totals.
func Investments(list []finance.Investment, invested, current finance.Money) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Investments\n\n")

	if len(list) == 0 {
		fmt.Fprintln(&b, "_No investments yet._")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Type | Since | Invested | Current | Growth | Id |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for _, inv := range list {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			inv.Name, inv.Type, inv.InitialDate, inv.Value, inv.CurrentValue,
			inv.Growth.SignedString(), inv.ID)
	}
	fmt.Fprintf(&b, "| **Total** | | | **%s** | **%s** | | |\n", invested, current)
	return b.String()
}
