package taxhelper

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

func TestRateTable_RateOn(t *testing.T) {
	table := NewRateTable().
		Append(date.MustParse("2025-01-01"), decimal.NewFromInt(150)).
		Append(date.MustParse("2025-01-05"), decimal.NewFromInt(155))

	testCases := []struct {
		name    string
		day     string
		want    int64
		missing bool
	}{
		{name: "exact quote", day: "2025-01-01", want: 150},
		{name: "forward-fill in a gap", day: "2025-01-03", want: 150},
		{name: "exact second quote", day: "2025-01-05", want: 155},
		{name: "forward-fill after last quote", day: "2025-02-01", want: 155},
		{name: "before earliest quote", day: "2024-12-31", missing: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := table.RateOn(date.MustParse(tc.day))
			if tc.missing {
				var missing *MissingRateError
				if !errors.As(err, &missing) {
					t.Fatalf("RateOn(%s) error = %v, want *MissingRateError", tc.day, err)
				}
				if missing.Day != date.MustParse(tc.day) {
					t.Errorf("MissingRateError.Day = %v, want %v", missing.Day, tc.day)
				}
				return
			}
			if err != nil {
				t.Fatalf("RateOn(%s) returned error: %v", tc.day, err)
			}
			if !got.Equal(decimal.NewFromInt(tc.want)) {
				t.Errorf("RateOn(%s) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestRateTable_RateOn_Empty(t *testing.T) {
	var missing *MissingRateError
	if _, err := NewRateTable().RateOn(date.MustParse("2025-01-01")); !errors.As(err, &missing) {
		t.Fatalf("empty table lookup error = %v, want *MissingRateError", err)
	}
}

func TestRateTable_AppendOverwrites(t *testing.T) {
	table := NewRateTable().
		Append(date.MustParse("2025-01-01"), decimal.NewFromInt(150)).
		Append(date.MustParse("2025-01-01"), decimal.NewFromInt(151))
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
	rate, _ := table.RateOn(date.MustParse("2025-01-01"))
	if !rate.Equal(decimal.NewFromInt(151)) {
		t.Errorf("rate = %v, want 151 (last write wins)", rate)
	}
}

func TestDecodeRates(t *testing.T) {
	// Unordered rows, a legend line, a trailing empty rate, and a gap
	// before the first real quote.
	in := strings.Join([]string{
		"日付,TTM",
		"2025-01-06,",                // valid date, missing rate: filled from 01-03
		"2025-01-03,149.5",
		"※当行公表仲値", // legend line, silently dropped
		"2025-01-02,",                // before the first real quote, dropped
		"2025-01-07,151",
		"",
	}, "\n")

	table, err := DecodeRates(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeRates returned error: %v", err)
	}
	if table.Len() != 3 {
		t.Fatalf("Len = %d, want 3", table.Len())
	}

	earliest, _ := table.Earliest()
	if earliest != date.MustParse("2025-01-03") {
		t.Errorf("Earliest = %v, want 2025-01-03 (leading gap dropped)", earliest)
	}
	for day, want := range map[string]string{
		"2025-01-03": "149.5",
		"2025-01-06": "149.5", // forward-filled missing value
		"2025-01-07": "151",
	} {
		rate, err := table.RateOn(date.MustParse(day))
		if err != nil {
			t.Fatalf("RateOn(%s) returned error: %v", day, err)
		}
		if rate.String() != want {
			t.Errorf("RateOn(%s) = %v, want %v", day, rate, want)
		}
	}
}

func TestDecodeRates_BOMHeader(t *testing.T) {
	in := "\uFEFF日付,TTM\n2025-01-03,150\n"
	table, err := DecodeRates(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeRates returned error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
}

func TestDecodeRates_MissingColumn(t *testing.T) {
	if _, err := DecodeRates(strings.NewReader("日付,レート\n2025-01-03,150\n")); err == nil {
		t.Fatal("DecodeRates should fail when the TTM column is absent")
	}
}

func TestEncodeRates_RoundTrip(t *testing.T) {
	table := NewRateTable().
		Append(date.MustParse("2025-01-03"), decimal.RequireFromString("149.5")).
		Append(date.MustParse("2025-01-07"), decimal.NewFromInt(151))

	var buf strings.Builder
	if err := EncodeRates(&buf, table); err != nil {
		t.Fatalf("EncodeRates returned error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\uFEFF") {
		t.Error("encoded rates should start with a BOM")
	}

	decoded, err := DecodeRates(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("DecodeRates returned error: %v", err)
	}
	if decoded.Len() != table.Len() {
		t.Fatalf("round trip lost quotes: %d != %d", decoded.Len(), table.Len())
	}
}
