package taxhelper

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// RowKind tags a merged report row as income or withdrawal.
type RowKind int

const (
	IncomeRow RowKind = iota
	WithdrawalRow
)

// Kind labels used in the merged report output.
const (
	labelIncomeRow     = "入金"
	labelWithdrawalRow = "出金"
)

func (k RowKind) String() string {
	if k == WithdrawalRow {
		return labelWithdrawalRow
	}
	return labelIncomeRow
}

// MergedRow is one line of the merged chronological report: the common
// projection of an income or withdrawal record, plus running balances.
// The withdrawal-only fields are zero on income rows (and rendered blank).
type MergedRow struct {
	Kind          RowKind
	Date          date.Date
	USDAmount     decimal.Decimal
	Rate          decimal.Decimal
	JPYEquivalent decimal.Decimal // income: deposit value; withdrawal: cost basis

	FXGainLoss    decimal.Decimal
	SpreadExpense decimal.Decimal
	ActualJPYOut  decimal.Decimal

	USDBalance decimal.Decimal // balance after this row
	JPYBalance decimal.Decimal // USDBalance × Rate
}

// BuildMergedReport merges the income and withdrawal records into a single
// date-sorted view and replays it to compute running balances.
//
// The sort is stable with ties kept in emission order; whether an income or
// a withdrawal comes first on a shared date is not specified.
func BuildMergedReport(rec *Recognition) []MergedRow {
	rows := make([]MergedRow, 0, len(rec.Incomes)+len(rec.Withdrawals))
	for _, in := range rec.Incomes {
		rows = append(rows, MergedRow{
			Kind:          IncomeRow,
			Date:          in.Date,
			USDAmount:     in.USDAmount,
			Rate:          in.Rate,
			JPYEquivalent: in.JPYEquivalent,
		})
	}
	for _, wd := range rec.Withdrawals {
		rows = append(rows, MergedRow{
			Kind:          WithdrawalRow,
			Date:          wd.Date,
			USDAmount:     wd.USDAmount,
			Rate:          wd.Rate,
			JPYEquivalent: wd.CostBasis,
			FXGainLoss:    wd.FXGainLoss,
			SpreadExpense: wd.SpreadExpense,
			ActualJPYOut:  wd.ActualJPYOut,
		})
	}

	slices.SortStableFunc(rows, func(a, b MergedRow) int { return compare(a.Date, b.Date) })

	balance := decimal.Zero
	for i := range rows {
		if rows[i].Kind == IncomeRow {
			balance = balance.Add(rows[i].USDAmount)
		} else {
			balance = balance.Sub(rows[i].USDAmount)
		}
		rows[i].USDBalance = balance
		rows[i].JPYBalance = balance.Mul(rows[i].Rate)
	}
	return rows
}
