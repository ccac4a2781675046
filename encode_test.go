package taxhelper

import (
	"strings"
	"testing"

	"github.com/youce23/paypal-tax-helper/date"
)

func TestEncodeMergedReport(t *testing.T) {
	rows := BuildMergedReport(testRecognition(t))

	var buf strings.Builder
	if err := EncodeMergedReport(&buf, rows); err != nil {
		t.Fatalf("EncodeMergedReport: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, bom) {
		t.Error("output does not start with a BOM")
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1+len(rows) {
		t.Fatalf("got %d lines, want %d", len(lines), 1+len(rows))
	}
	if want := "種別,日付,USD金額,TTM,JPY換算額,為替損益,スプレッド,実際の出金額,残高（USD）,残高（JPY換算）"; strings.TrimPrefix(lines[0], bom) != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}

	// Income rows leave the withdrawal-only columns blank.
	if want := "入金,2025-01-10,1000,150,150000,,,,1000,150000"; lines[1] != want {
		t.Errorf("income row = %q, want %q", lines[1], want)
	}
	if want := "出金,2025-01-20,1500,155,226000,6500,2500,230000,0,0"; lines[3] != want {
		t.Errorf("withdrawal row = %q, want %q", lines[3], want)
	}
}

func TestEncodeSummary_MonthColumn(t *testing.T) {
	rec := testRecognition(t)

	var monthly, yearly strings.Builder
	if err := EncodeSummary(&monthly, Summarize(rec, date.Monthly), date.Monthly); err != nil {
		t.Fatalf("EncodeSummary monthly: %v", err)
	}
	if err := EncodeSummary(&yearly, Summarize(rec, date.Yearly), date.Yearly); err != nil {
		t.Fatalf("EncodeSummary yearly: %v", err)
	}

	mHeader, _, _ := strings.Cut(strings.TrimPrefix(monthly.String(), bom), "\n")
	yHeader, _, _ := strings.Cut(strings.TrimPrefix(yearly.String(), bom), "\n")
	if !strings.HasPrefix(mHeader, "年,月,") {
		t.Errorf("monthly header = %q, want a 月 column", mHeader)
	}
	if strings.Contains(yHeader, "月") {
		t.Errorf("yearly header = %q, want no 月 column", yHeader)
	}
	if !strings.Contains(yearly.String(), "\n2025,1700,256600,6500,230000,2500,263100,2500\n") {
		t.Errorf("yearly totals row missing:\n%s", yearly.String())
	}
}

func TestEncodeIncomes(t *testing.T) {
	rec := testRecognition(t)

	var buf strings.Builder
	if err := EncodeIncomes(&buf, rec.Incomes); err != nil {
		t.Fatalf("EncodeIncomes: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if want := "2025-01-15,500,152,76000"; lines[2] != want {
		t.Errorf("lines[2] = %q, want %q", lines[2], want)
	}
}
