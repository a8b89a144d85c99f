// Package renderer turns finance reports into markdown documents.
// Rendering is presentation only: every figure is computed by the
// finance package, never here.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dlemos/finance"
)

// Transactions renders the transaction list to a markdown table.
func Transactions(list []finance.Transaction) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transactions\n\n")

	if len(list) == 0 {
		fmt.Fprintln(&b, "_No transactions yet._")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Description | Category | Type | Amount | Id |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|---:|:---|")
	for _, tx := range list {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Description, tx.Category, tx.Type, tx.Signed(), tx.ID)
	}
	return b.String()
}

// Cards renders the card list.
func Cards(list []finance.Card) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Cards\n\n")

	if len(list) == 0 {
		fmt.Fprintln(&b, "_No cards yet._")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Id |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, c := range list {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Name, c.ID)
	}
	return b.String()
}
