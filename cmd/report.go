package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
)

type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "generate all tax report CSV files" }
func (*reportCmd) Usage() string {
	return `ptx report [-ledger <file>] [-rates <file>] [-output <dir>]

  Runs the recognition pass over the account ledger and writes the income
  detail, withdrawal detail, merged report, and monthly/yearly summaries as
  CSV files into the output directory. Nothing is written if any input row
  is malformed or a transaction predates the first known rate.
`
}

func (*reportCmd) SetFlags(_ *flag.FlagSet) {}

// output file names, stable so spreadsheets can re-import them in place.
const (
	incomeDetailFile     = "income_details.csv"
	withdrawalDetailFile = "tax_report.csv"
	mergedReportFile     = "merged_report.csv"
	monthlySummaryFile   = "monthly_summary.csv"
	yearlySummaryFile    = "yearly_summary.csv"
)

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Compute everything before writing anything: a failed run must not
	// leave a partial set of artifacts behind.
	rec, err := recognize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	merged := taxhelper.BuildMergedReport(rec)
	monthly := taxhelper.Summarize(rec, date.Monthly)
	yearly := taxhelper.Summarize(rec, date.Yearly)

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory %q: %v\n", *outputDir, err)
		return subcommands.ExitFailure
	}

	artifacts := []struct {
		name   string
		encode func(f *os.File) error
	}{
		{incomeDetailFile, func(f *os.File) error { return taxhelper.EncodeIncomes(f, rec.Incomes) }},
		{withdrawalDetailFile, func(f *os.File) error { return taxhelper.EncodeWithdrawals(f, rec.Withdrawals) }},
		{mergedReportFile, func(f *os.File) error { return taxhelper.EncodeMergedReport(f, merged) }},
		{monthlySummaryFile, func(f *os.File) error { return taxhelper.EncodeSummary(f, monthly, date.Monthly) }},
		{yearlySummaryFile, func(f *os.File) error { return taxhelper.EncodeSummary(f, yearly, date.Yearly) }},
	}

	for _, artifact := range artifacts {
		path := filepath.Join(*outputDir, artifact.name)
		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		err = artifact.encode(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("→ %s\n", path)
	}

	if rec.Unsettled > 0 {
		fmt.Printf("warning: %d withdrawal(s) skipped without a same-day JPY settlement\n", rec.Unsettled)
	}
	if rec.Ambiguous > 0 {
		fmt.Printf("warning: %d withdrawal(s) had several same-day JPY settlement candidates\n", rec.Ambiguous)
	}
	return subcommands.ExitSuccess
}
