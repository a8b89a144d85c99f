package renderer

import (
	"fmt"
	"strings"

	"github.com/dlemos/finance"
)

// Payments renders the payment list with the status derived for the
// given day.
func Payments(list []finance.Payment, on finance.Date) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Payments on %s\n\n", on)

	if len(list) == 0 {
		fmt.Fprintln(&b, "_No payments yet._")
		return b.String()
	}

	fmt.Fprintln(&b, "| Description | Amount | Due day | Status | Card | Installment | Id |")
	fmt.Fprintln(&b, "|:---|---:|---:|:---|:---|:---|:---|")
	var due finance.Money
	for _, p := range list {
		card, installment := p.CardName, p.InstallmentLabel()
		if card == "" {
			card = "-"
		}
		if installment == "" {
			installment = "-"
		}
		status := p.Status(on)
		if status != finance.Paid {
			due = due.Add(p.Amount)
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s |\n",
			p.Description, p.Amount, p.DueDay, status, card, installment, p.ID)
	}
	fmt.Fprintf(&b, "\nStill due: **%s**\n", due)
	return b.String()
}
