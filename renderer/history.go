package renderer

import (
	"bytes"

	"github.com/dlemos/finance"
	md "github.com/nao1215/markdown"
)

// History renders the monthly cash flow table, oldest month first.
func History(points []finance.MonthlyPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Income", "Expenses", "Balance"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Label(),
			p.Income.String(),
			p.Expenses.String(),
			p.Balance().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
