package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/guillaumevincent/monpatrimoine/internal/bilan"
	"github.com/guillaumevincent/monpatrimoine/internal/report"
)

type reportCmd struct {
	out io.Writer

	format     string
	title      string
	currency   string
	outputFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "prints the wealth report of every bilan" }
func (*reportCmd) Usage() string {
	return `bilan report [-format markdown|html] [-title <title>] [-currency <code>] [-o <file>]

  Prints the current net worth, the allocation by category and the history
  of recorded bilans.

Usage Examples:
$ bilan report
$ bilan report -format html -o patrimoine.html

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "markdown", "Output format: markdown or html")
	f.StringVar(&c.title, "title", report.DefaultTitle, "Report title")
	f.StringVar(&c.currency, "currency", "", "Currency code, defaults to CURRENCY")
	f.StringVar(&c.outputFile, "o", "", "Write the report to this file instead of stdout")
}

func (c *reportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var render func([]bilan.Snapshot, report.Options) (string, error)
	switch c.format {
	case "markdown":
		render = report.Markdown
	case "html":
		render = report.HTML
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (use markdown or html)\n", c.format)
		return subcommands.ExitUsageError
	}

	ledger, cfg, closeFn, err := openLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeFn()

	currency := c.currency
	if currency == "" {
		currency = cfg.Currency
	}

	doc, err := render(ledger.Load().Snapshots(time.Now()), report.Options{Title: c.title, Currency: currency})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile == "" {
		fmt.Fprint(c.out, doc)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.outputFile, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", c.outputFile)
	return subcommands.ExitSuccess
}
