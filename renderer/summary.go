// Package renderer turns report structures into markdown for the terminal.
package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
)

func jpy(v decimal.Decimal) string { return taxhelper.M(v, "JPY").String() }
func usd(v decimal.Decimal) string { return taxhelper.M(v, "USD").String() }

func groupLabel(row taxhelper.SummaryRow) string {
	if row.Period == date.Monthly {
		return row.Start.Format("2006-01")
	}
	return row.Start.Format("2006")
}

// SummaryMarkdown renders the monthly or yearly summary as a markdown table.
func SummaryMarkdown(rows []taxhelper.SummaryRow, p date.Period) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title, group := "Yearly Summary", "Year"
	if p == date.Monthly {
		title, group = "Monthly Summary", "Month"
	}
	doc.H1(title)

	if len(rows) == 0 {
		doc.PlainText("No recognized records.")
		return doc.String()
	}

	set := md.TableSet{
		Header: []string{
			group,
			"Income (USD)", "Income (JPY)", "FX Gain/Loss",
			"Paid Out (JPY)", "Spread", "Misc. Income", "Deductible",
		},
	}
	for _, row := range rows {
		set.Rows = append(set.Rows, []string{
			groupLabel(row),
			usd(row.USDIncome),
			jpy(row.JPYIncome),
			taxhelper.M(row.FXGainLoss, "JPY").SignedString(),
			jpy(row.JPYPaidOut),
			jpy(row.SpreadExpense),
			jpy(row.MiscIncome),
			jpy(row.DeductibleExpense),
		})
	}
	doc.Table(set)

	return doc.String()
}
