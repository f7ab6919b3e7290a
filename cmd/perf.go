package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/foliokit/folio"
	"github.com/foliokit/folio/date"
	"github.com/foliokit/folio/renderer"
)

// perfCmd holds the flags for the 'perf' subcommand.
type perfCmd struct {
	start string
	end   string
}

func (*perfCmd) Name() string { return "perf" }
func (*perfCmd) Synopsis() string {
	return "display the profit and annualized return between two dates"
}
func (*perfCmd) Usage() string {
	return `fv perf -s <start_date> [-e <end_date>] SYMBOL:QUANTITY[:NAME]...

  Values the portfolio at both dates and prints the two valuation reports
  followed by the profit and the annualized return over the period. The
  same shares are assumed held over the whole period.

Usage Examples:
$ fv perf -s 2024-01-03 -e 2024-12-30 AAPL:10:"Apple Inc." MSFT:5 GOOGL:3

`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "s", "", "Start date of the period (YYYY-MM-DD)")
	f.StringVar(&c.end, "e", date.Today().String(), "End date of the period (YYYY-MM-DD)")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" {
		fmt.Fprintf(os.Stderr, "Error: -s <start_date> is required\n")
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := date.Parse(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	p, err := parsePositions(cfg.Currency, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r, err := newResolver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	// Evaluate first: nothing is printed for a period that cannot be valued.
	perf, err := folio.Evaluate(p, r, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating performance: %v\n", err)
		return subcommands.ExitFailure
	}

	// Both valuations below are served from the resolver's cache.
	startReport, err := p.ValueOn(r, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	endReport, err := p.ValueOn(r, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ValuationMarkdown(startReport))
	printMarkdown(renderer.ValuationMarkdown(endReport))
	printMarkdown(renderer.PerformanceMarkdown(perf))
	return subcommands.ExitSuccess
}
