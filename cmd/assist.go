package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	taxhelper "github.com/youce23/paypal-tax-helper"
	"github.com/youce23/paypal-tax-helper/date"
	"github.com/youce23/paypal-tax-helper/renderer"
	"google.golang.org/genai"
)

type assistCmd struct {
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "explain the yearly figures with Gemini" }
func (*assistCmd) Usage() string {
	return `ptx assist [question]

  Sends the yearly summary to Gemini and prints a plain-language explanation
  of the figures. An optional question is answered in the same context.
  The GEMINI_API_KEY environment variable must be set.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rec, err := recognize()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	summary := renderer.SummaryMarkdown(taxhelper.Summarize(rec, date.Yearly), date.Yearly)

	var prompt strings.Builder
	prompt.WriteString("You are a Japanese tax accountant. The following yearly summary\n")
	prompt.WriteString("comes from a USD-denominated PayPal account: deposits are valued in\n")
	prompt.WriteString("JPY as miscellaneous income at the day's TTM, withdrawals realize fx\n")
	prompt.WriteString("gain/loss against the accumulated cost basis, and the spread is a\n")
	prompt.WriteString("deductible expense. Explain the figures in plain language.\n\n")
	prompt.WriteString(summary)
	if f.NArg() > 0 {
		prompt.WriteString("\n\nQuestion: ")
		prompt.WriteString(strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt.String()), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating explanation:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
