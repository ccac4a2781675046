package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
	"github.com/youce23/paypal-tax-helper/renderer"
)

// renderSummary runs the pipeline and prints the summary for one period.
func renderSummary(p date.Period) subcommands.ExitStatus {
	rec, err := recognize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SummaryMarkdown(taxhelper.Summarize(rec, p), p))
	return subcommands.ExitSuccess
}

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the monthly income and expense summary" }
func (*monthlyCmd) Usage() string {
	return `ptx monthly

  Displays miscellaneous income and deductible spread expense per month.
`
}
func (*monthlyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderSummary(date.Monthly)
}

type yearlyCmd struct{}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display the yearly income and expense summary" }
func (*yearlyCmd) Usage() string {
	return `ptx yearly

  Displays miscellaneous income and deductible spread expense per year,
  the figures that go on the tax return.
`
}
func (*yearlyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return renderSummary(date.Yearly)
}
