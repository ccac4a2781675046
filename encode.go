package taxhelper

import (
	"encoding/csv"
	"io"

	"github.com/youce23/paypal-tax-helper/date"
)

// bom is prepended to every CSV artifact so spreadsheet applications decode
// the Japanese column labels correctly (the UTF-8 equivalent of utf-8-sig).
const bom = "\uFEFF"

// EncodeIncomes writes the per-deposit income detail.
func EncodeIncomes(w io.Writer, records []IncomeRecord) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"入金日", "USD入金額", "入金時TTM", "JPY換算額（雑所得）"}); err != nil {
		return err
	}
	for _, in := range records {
		if err := cw.Write([]string{
			in.Date.String(),
			in.USDAmount.String(),
			in.Rate.String(),
			in.JPYEquivalent.String(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeWithdrawals writes the per-withdrawal recognition detail.
func EncodeWithdrawals(w io.Writer, records []WithdrawalRecord) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"出金日", "USD出金額", "出金TTM", "JPY換算入金額（雑所得）",
		"為替損益（雑所得）", "スプレッド（経費）", "実際のJPY出金額", "JPY評価額（TTM換算）",
	}); err != nil {
		return err
	}
	for _, wd := range records {
		if err := cw.Write([]string{
			wd.Date.String(),
			wd.USDAmount.String(),
			wd.Rate.String(),
			wd.CostBasis.String(),
			wd.FXGainLoss.String(),
			wd.SpreadExpense.String(),
			wd.ActualJPYOut.String(),
			wd.JPYMarkToMarket.String(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeMergedReport writes the merged chronological report with running
// balances. Withdrawal-only columns are blank on income rows.
func EncodeMergedReport(w io.Writer, rows []MergedRow) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"種別", "日付", "USD金額", "TTM", "JPY換算額",
		"為替損益", "スプレッド", "実際の出金額", "残高（USD）", "残高（JPY換算）",
	}); err != nil {
		return err
	}
	for _, row := range rows {
		fx, spread, actual := "", "", ""
		if row.Kind == WithdrawalRow {
			fx = row.FXGainLoss.String()
			spread = row.SpreadExpense.String()
			actual = row.ActualJPYOut.String()
		}
		if err := cw.Write([]string{
			row.Kind.String(),
			row.Date.String(),
			row.USDAmount.String(),
			row.Rate.String(),
			row.JPYEquivalent.String(),
			fx, spread, actual,
			row.USDBalance.String(),
			row.JPYBalance.String(),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeSummary writes a monthly or yearly summary. Monthly summaries carry
// a 月 column, yearly ones do not.
func EncodeSummary(w io.Writer, rows []SummaryRow, p date.Period) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	header := []string{"年"}
	if p == date.Monthly {
		header = append(header, "月")
	}
	header = append(header,
		"USD入金額合計", "JPY換算額合計", "為替損益合計",
		"実際のJPY出金額合計", "スプレッド合計", "雑所得合計", "必要経費合計")
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Start.Format("2006")}
		if p == date.Monthly {
			record = append(record, row.Start.Format("1"))
		}
		record = append(record,
			row.USDIncome.String(),
			row.JPYIncome.String(),
			row.FXGainLoss.String(),
			row.JPYPaidOut.String(),
			row.SpreadExpense.String(),
			row.MiscIncome.String(),
			row.DeductibleExpense.String(),
		)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
