package taxhelper

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/youce23/paypal-tax-helper/date"
)

// RateTable stores the daily TTM quotes, chronologically sorted with unique
// dates. Rates are published on business days only, so lookups forward-fill
// from the most recent quote at or before the requested day.
type RateTable struct {
	days  []date.Date
	rates []decimal.Decimal
}

// MissingRateError reports a lookup for a day that precedes the earliest
// known quote, where forward-fill has nothing to fill from.
type MissingRateError struct {
	Day      date.Date
	Earliest date.Date
}

func (e *MissingRateError) Error() string {
	if e.Earliest.IsZero() {
		return fmt.Sprintf("no rate for %s: rate table is empty", e.Day)
	}
	return fmt.Sprintf("no rate for %s: earliest known quote is %s", e.Day, e.Earliest)
}

// NewRateTable returns a new empty rate table.
func NewRateTable() *RateTable { return &RateTable{} }

// Len returns the number of quotes in the table.
func (t *RateTable) Len() int { return len(t.days) }

// Earliest returns the first quoted day, or false on an empty table.
func (t *RateTable) Earliest() (date.Date, bool) {
	if len(t.days) == 0 {
		return date.Date{}, false
	}
	return t.days[0], true
}

// Latest returns the last quoted day, or false on an empty table.
func (t *RateTable) Latest() (date.Date, bool) {
	if len(t.days) == 0 {
		return date.Date{}, false
	}
	return t.days[len(t.days)-1], true
}

// compare orders two days for binary search.
func compare(d, target date.Date) int {
	if d.After(target) {
		return 1
	}
	if d.Before(target) {
		return -1
	}
	return 0
}

// Append adds a quote to the table, keeping it sorted.
// An existing quote at the same date is overwritten.
func (t *RateTable) Append(on date.Date, rate decimal.Decimal) *RateTable {
	i, found := slices.BinarySearchFunc(t.days, on, compare)
	if found {
		t.rates[i] = rate
		return t
	}
	t.days = slices.Insert(t.days, i, on)
	t.rates = slices.Insert(t.rates, i, rate)
	return t
}

// RateOn returns the rate applicable on a given day: the quote of that day,
// or the most recent quote before it. It returns a *MissingRateError when
// the day precedes the earliest quote.
func (t *RateTable) RateOn(on date.Date) (decimal.Decimal, error) {
	i, found := slices.BinarySearchFunc(t.days, on, compare)
	if found {
		return t.rates[i], nil
	}
	// i is the insertion index, so i-1 is the last quote before 'on'.
	if i == 0 {
		earliest, _ := t.Earliest()
		return decimal.Zero, &MissingRateError{Day: on, Earliest: earliest}
	}
	return t.rates[i-1], nil
}

// All calls yield for every (day, rate) pair in chronological order.
func (t *RateTable) All(yield func(date.Date, decimal.Decimal) bool) {
	for i, on := range t.days {
		if !yield(on, t.rates[i]) {
			return
		}
	}
}

// rate table CSV columns.
const (
	colRateDate = "日付"
	colRateTTM  = "TTM"
)

// DecodeRates reads a TTM rate table in CSV format.
//
// Rows whose date does not parse are silently dropped: the published files
// carry legend and footnote lines that are not quotes. Rows with a valid
// date but a missing or unparseable rate are kept and forward-filled from
// the previous quote once the table is sorted; such rows before the first
// real quote are dropped entirely.
func DecodeRates(r io.Reader) (*RateTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read rate table header: %w", err)
	}
	dateCol, ttmCol := -1, -1
	for i, name := range header {
		switch strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF") {
		case colRateDate:
			dateCol = i
		case colRateTTM:
			ttmCol = i
		}
	}
	if dateCol < 0 || ttmCol < 0 {
		return nil, fmt.Errorf("rate table is missing the %q or %q column", colRateDate, colRateTTM)
	}

	type quote struct {
		on   date.Date
		rate decimal.Decimal
		ok   bool // false when the rate cell did not parse
	}
	var quotes []quote
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read rate table row: %w", err)
		}
		if dateCol >= len(record) {
			continue
		}
		on, err := date.Parse(strings.TrimSpace(record[dateCol]))
		if err != nil {
			continue // not a quote row
		}
		q := quote{on: on}
		if ttmCol < len(record) {
			if rate, err := decimal.NewFromString(strings.TrimSpace(record[ttmCol])); err == nil {
				q.rate, q.ok = rate, true
			}
		}
		quotes = append(quotes, q)
	}

	slices.SortStableFunc(quotes, func(a, b quote) int { return compare(a.on, b.on) })

	t := NewRateTable()
	last := decimal.Zero
	known := false
	for _, q := range quotes {
		if q.ok {
			last, known = q.rate, true
		}
		if !known {
			continue // gap before the first real quote
		}
		t.Append(q.on, last)
	}
	return t, nil
}

// EncodeRates writes the table in the same CSV format DecodeRates reads.
func EncodeRates(w io.Writer, t *RateTable) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{colRateDate, colRateTTM}); err != nil {
		return err
	}
	for on, rate := range t.All {
		if err := cw.Write([]string{on.String(), rate.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
