package taxhelper

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

func testRecognition(t *testing.T) *Recognition {
	t.Helper()
	ledger := NewLedger().
		Append(NewTransaction(date.MustParse("2025-01-10"), USD, Deposit, decimal.NewFromInt(1000))).
		Append(NewTransaction(date.MustParse("2025-01-15"), USD, Deposit, decimal.NewFromInt(500))).
		Append(NewTransaction(date.MustParse("2025-01-20"), USD, Withdrawal, decimal.NewFromInt(-1500))).
		Append(NewTransaction(date.MustParse("2025-01-20"), JPY, Withdrawal, decimal.NewFromInt(-230000))).
		Append(NewTransaction(date.MustParse("2025-02-10"), USD, Deposit, decimal.NewFromInt(200)))

	rates := testRates().Append(date.MustParse("2025-02-10"), decimal.NewFromInt(153))
	rec, err := Recognize(ledger, rates)
	if err != nil {
		t.Fatalf("Recognize returned error: %v", err)
	}
	return rec
}

func TestBuildMergedReport(t *testing.T) {
	rows := BuildMergedReport(testRecognition(t))
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	// Chronological order.
	for i := 1; i < len(rows); i++ {
		if rows[i].Date.Before(rows[i-1].Date) {
			t.Fatalf("rows out of order: %v before %v", rows[i].Date, rows[i-1].Date)
		}
	}

	wantBalances := []struct {
		kind RowKind
		usd  int64
		jpy  int64
	}{
		{IncomeRow, 1000, 150000},      // 1000 × 150
		{IncomeRow, 1500, 228000},      // 1500 × 152
		{WithdrawalRow, 0, 0},          // full drawdown
		{IncomeRow, 200, 30600},        // 200 × 153
	}
	for i, want := range wantBalances {
		if rows[i].Kind != want.kind {
			t.Errorf("rows[%d].Kind = %v, want %v", i, rows[i].Kind, want.kind)
		}
		checkDecimal(t, "USDBalance", rows[i].USDBalance, decimal.NewFromInt(want.usd))
		checkDecimal(t, "JPYBalance", rows[i].JPYBalance, decimal.NewFromInt(want.jpy))
	}

	// Withdrawal row carries the recognition fields; income rows stay zero.
	wd := rows[2]
	checkDecimal(t, "JPYEquivalent (cost basis)", wd.JPYEquivalent, decimal.NewFromInt(226000))
	checkDecimal(t, "FXGainLoss", wd.FXGainLoss, decimal.NewFromInt(6500))
	checkDecimal(t, "ActualJPYOut", wd.ActualJPYOut, decimal.NewFromInt(230000))
	if !rows[0].FXGainLoss.IsZero() || !rows[0].ActualJPYOut.IsZero() {
		t.Errorf("income row carries withdrawal fields: %+v", rows[0])
	}
}

func TestBuildMergedReport_Empty(t *testing.T) {
	if rows := BuildMergedReport(&Recognition{}); len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}
