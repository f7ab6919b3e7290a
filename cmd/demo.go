package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/foliokit/folio"
	"github.com/foliokit/folio/date"
	"github.com/foliokit/folio/renderer"
)

// demoCmd runs the worked example on built-in market data, no API key needed.
type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the worked example on built-in market data" }
func (*demoCmd) Usage() string {
	return `fv demo

  Values 10 AAPL, 5 MSFT and 3 GOOGL at the first and last trading days of
  2024 against built-in closing prices, then prints the profit and the
  annualized return. Works offline, no API key needed.

`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (*demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	market := demoMarket()
	p := folio.NewPortfolio("USD")
	for _, s := range []struct {
		symbol, name string
		qty          folio.Quantity
	}{
		{"AAPL", "Apple Inc.", folio.Q(10)},
		{"MSFT", "Microsoft Corporation", folio.Q(5)},
		{"GOOGL", "Alphabet Inc.", folio.Q(3)},
	} {
		if err := p.AddStock(s.symbol, s.name, s.qty); err != nil {
			fmt.Fprintf(os.Stderr, "Error building demo portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	start := date.New(2024, time.January, 3)
	end := date.New(2024, time.December, 30)
	r := folio.NewResolver(market, folio.NewPriceCache(), folio.DefaultLookbackDays)

	perf, err := folio.Evaluate(p, r, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating performance: %v\n", err)
		return subcommands.ExitFailure
	}
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

// demoMarket returns the closing prices of the worked example: the first
// and last trading days of 2024, plus the friday before Epiphany weekend to
// show the backward resolution.
func demoMarket() *folio.Market {
	m := folio.NewMarket()

	m.Append("AAPL", date.New(2024, time.January, 3), 183.15)
	m.Append("AAPL", date.New(2024, time.January, 5), 181.18)
	m.Append("AAPL", date.New(2024, time.December, 30), 251.92)

	m.Append("MSFT", date.New(2024, time.January, 3), 367.11)
	m.Append("MSFT", date.New(2024, time.January, 5), 367.75)
	m.Append("MSFT", date.New(2024, time.December, 30), 423.98)

	m.Append("GOOGL", date.New(2024, time.January, 3), 138.26)
	m.Append("GOOGL", date.New(2024, time.January, 5), 136.39)
	m.Append("GOOGL", date.New(2024, time.December, 30), 191.02)

	return m
}
