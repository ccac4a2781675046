package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/renderer"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the merged chronological report" }
func (*showCmd) Usage() string {
	return `ptx show

  Displays every recognized deposit and withdrawal in date order with the
  running USD balance and its JPY valuation.
`
}
func (*showCmd) SetFlags(_ *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := recognize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MergedMarkdown(taxhelper.BuildMergedReport(rec)))
	return subcommands.ExitSuccess
}
