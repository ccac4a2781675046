package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
	"github.com/youce23/paypal-tax-helper/mizuho"
)

type fetchCmd struct {
	spot bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download TTM quotes into the rates file" }
func (*fetchCmd) Usage() string {
	return `ptx fetch [-spot]

  Downloads the published historical TTM table and merges it into the local
  rates file. With -spot, today's intraday USD/JPY quote is appended as a
  provisional rate for days the table does not cover yet.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.spot, "spot", false, "also record today's intraday quote as a provisional rate")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Start from the existing local table so quotes that dropped out of the
	// published window are kept.
	table := taxhelper.NewRateTable()
	if existing, err := decodeRates(); err == nil {
		for on, rate := range existing.All {
			table.Append(on, rate)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	} else {
		log.Printf("rates file %q does not exist, creating it", *ratesFile)
	}

	fetched, err := mizuho.Fetch(taxhelper.DailyClient())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching TTM quotes: %v\n", err)
		return subcommands.ExitFailure
	}
	for on, rate := range fetched.All {
		table.Append(on, rate)
	}

	if c.spot {
		spot, err := taxhelper.SpotJPYPerUSD()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching spot quote: %v\n", err)
			return subcommands.ExitFailure
		}
		table.Append(date.Today(), spot)
	}

	file, err := os.Create(*ratesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rates file %q: %v\n", *ratesFile, err)
		return subcommands.ExitFailure
	}
	err = taxhelper.EncodeRates(file, table)
	file.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing rates file %q: %v\n", *ratesFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("→ %s (%d quotes)\n", *ratesFile, table.Len())
	return subcommands.ExitSuccess
}
