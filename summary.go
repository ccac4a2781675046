package taxhelper

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// SummaryRow aggregates one month or one year of recognized records.
//
// MiscIncome is what goes on the miscellaneous-income line of the return
// (deposit value plus realized fx gain/loss); DeductibleExpense is the
// spread paid to the provider on disposal.
type SummaryRow struct {
	Start  date.Date // first day of the group (month or year)
	Period date.Period

	USDIncome     decimal.Decimal // sum of income USD amounts
	JPYIncome     decimal.Decimal // sum of income JPY equivalents
	FXGainLoss    decimal.Decimal // sum of withdrawal fx gain/loss
	JPYPaidOut    decimal.Decimal // sum of actual JPY paid out
	SpreadExpense decimal.Decimal // sum of spread expenses

	MiscIncome        decimal.Decimal // JPYIncome + FXGainLoss
	DeductibleExpense decimal.Decimal // SpreadExpense
}

// Summarize groups the recognized records by period and totals them.
// A group missing one record kind keeps zeros for that kind's columns;
// rows come out sorted by group key.
func Summarize(rec *Recognition, p date.Period) []SummaryRow {
	groups := make(map[date.Date]*SummaryRow)
	group := func(on date.Date) *SummaryRow {
		start := on.StartOf(p)
		row, ok := groups[start]
		if !ok {
			row = &SummaryRow{Start: start, Period: p}
			groups[start] = row
		}
		return row
	}

	for _, in := range rec.Incomes {
		row := group(in.Date)
		row.USDIncome = row.USDIncome.Add(in.USDAmount)
		row.JPYIncome = row.JPYIncome.Add(in.JPYEquivalent)
	}
	for _, wd := range rec.Withdrawals {
		row := group(wd.Date)
		row.FXGainLoss = row.FXGainLoss.Add(wd.FXGainLoss)
		row.JPYPaidOut = row.JPYPaidOut.Add(wd.ActualJPYOut)
		row.SpreadExpense = row.SpreadExpense.Add(wd.SpreadExpense)
	}

	rows := make([]SummaryRow, 0, len(groups))
	for _, row := range groups {
		row.MiscIncome = row.JPYIncome.Add(row.FXGainLoss)
		row.DeductibleExpense = row.SpreadExpense
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, func(a, b SummaryRow) int { return compare(a.Start, b.Start) })
	return rows
}
