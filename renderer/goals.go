package renderer

import (
	"fmt"
	"strings"

	"github.com/dlemos/finance"
)

// Goals renders the goal list with progress and the estimated months
// still needed.
func Goals(list []finance.Goal) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Goals\n\n")

	if len(list) == 0 {
		fmt.Fprintln(&b, "_No goals yet._")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Saved | Target | Progress | Months left | Id |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|")
	for _, g := range list {
		months := "-"
		if g.Completed() {
			months = "done"
		} else if n, ok := g.MonthsToTarget(); ok {
			months = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			g.Name, g.CurrentAmount, g.TargetAmount, g.Progress(), months, g.ID)
	}
	return b.String()
}
