// Package mizuho downloads the bank's published table of historical TTM
// quotes and extracts the USD column.
package mizuho

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
)

// quoteURL serves one row per business day, first column the date, then one
// column per currency code.
const quoteURL = "https://www.mizuhobank.co.jp/market/csv/quote.csv"

const publishedDateFormat = "2006/1/2"

// Fetch downloads the historical quote table and returns the USD TTM series.
// Pass taxhelper.DailyClient() to avoid re-downloading within a day.
func Fetch(client *http.Client) (*taxhelper.RateTable, error) {
	resp, err := client.Get(quoteURL)
	if err != nil {
		return nil, fmt.Errorf("cannot download quote table: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot download quote table: %v", resp.Status)
	}
	return parse(resp.Body)
}

// parse extracts the (date, USD) pairs from the published CSV.
//
// The file opens with a couple of caption lines before the header row that
// carries the currency codes, and it is not UTF-8; only the ASCII currency
// codes and the date/number cells are read, so no transcoding is needed.
func parse(r io.Reader) (*taxhelper.RateTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	table := taxhelper.NewRateTable()
	usdCol := -1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read quote table: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		on, dateErr := parseDate(record[0])
		if dateErr != nil {
			// Caption or header line: remember where the USD column is.
			for i, cell := range record {
				if strings.TrimSpace(cell) == "USD" {
					usdCol = i
				}
			}
			continue
		}
		if usdCol < 0 || usdCol >= len(record) {
			continue
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(record[usdCol]))
		if err != nil {
			continue // "*****" before the currency was first listed
		}
		table.Append(on, rate)
	}
	if usdCol < 0 {
		return nil, fmt.Errorf("quote table has no USD column")
	}
	return table, nil
}

func parseDate(cell string) (date.Date, error) {
	on, err := time.Parse(publishedDateFormat, strings.TrimSpace(cell))
	if err != nil {
		return date.Date{}, err
	}
	return date.New(on.Date()), nil
}
