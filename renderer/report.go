package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	taxhelper "github.com/youce23/paypal-tax-helper"
)

// MergedMarkdown renders the merged chronological report as a markdown table.
func MergedMarkdown(rows []taxhelper.MergedRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Account Activity")

	if len(rows) == 0 {
		doc.PlainText("No recognized records.")
		return doc.String()
	}

	set := md.TableSet{
		Header: []string{
			"Date", "Kind", "Amount (USD)", "TTM", "Value (JPY)",
			"FX Gain/Loss", "Spread", "Paid Out (JPY)",
			"Balance (USD)", "Balance (JPY)",
		},
	}
	for _, row := range rows {
		kind := "deposit"
		fx, spread, actual := "", "", ""
		if row.Kind == taxhelper.WithdrawalRow {
			kind = "withdrawal"
			fx = taxhelper.M(row.FXGainLoss, "JPY").SignedString()
			spread = jpy(row.SpreadExpense)
			actual = jpy(row.ActualJPYOut)
		}
		set.Rows = append(set.Rows, []string{
			row.Date.String(),
			kind,
			usd(row.USDAmount),
			row.Rate.String(),
			jpy(row.JPYEquivalent),
			fx, spread, actual,
			usd(row.USDBalance),
			jpy(row.JPYBalance),
		})
	}
	doc.Table(set)

	doc.PlainText(fmt.Sprintf("%d rows.", len(rows)))
	return doc.String()
}
