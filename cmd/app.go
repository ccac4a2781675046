// Package cmd implements the ptx CLI application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger", "transactions.csv", "Path to the account activity CSV export")
	ratesFile  = flag.String("rates", "ttm_rates.csv", "Path to the TTM rate table CSV")
	outputDir  = flag.String("output", "output", "Directory for generated report files")
)

// Commands lists the subcommands in registration order.
// A main package registers them and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&monthlyCmd{},
	&yearlyCmd{},
	&showCmd{},
	&fetchCmd{},
	&assistCmd{},
	&topicCmd{},
}

// decodeLedger loads the account ledger from the app ledger file.
func decodeLedger() (*taxhelper.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := taxhelper.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// decodeRates loads the TTM rate table from the app rates file.
func decodeRates() (*taxhelper.RateTable, error) {
	f, err := os.Open(*ratesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open rates file %q: %w", *ratesFile, err)
	}
	defer f.Close()

	rates, err := taxhelper.DecodeRates(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode rates file %q: %w", *ratesFile, err)
	}
	return rates, nil
}

// recognize loads both inputs and runs the recognition pass.
func recognize() (*taxhelper.Recognition, error) {
	rates, err := decodeRates()
	if err != nil {
		return nil, err
	}
	ledger, err := decodeLedger()
	if err != nil {
		return nil, err
	}
	return taxhelper.Recognize(ledger, rates)
}
