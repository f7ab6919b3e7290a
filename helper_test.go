package folio

import (
	"testing"
	"time"

	"github.com/foliokit/folio/date"
)

func USD(v float64) Money { return M(v, "USD") }

var (
	firstTradingDay = date.New(2024, time.January, 3)   // wednesday
	lastTradingDay  = date.New(2024, time.December, 30) // monday
	saturday        = date.New(2024, time.January, 6)
	fridayBefore    = date.New(2024, time.January, 5)
)

// scenarioMarket returns deterministic daily closes around the first and
// last trading days of 2024 for AAPL, MSFT and GOOGL.
func scenarioMarket() *Market {
	m := NewMarket()

	m.Append("AAPL", date.New(2024, time.January, 2), 185.64)
	m.Append("AAPL", firstTradingDay, 183.15)
	m.Append("AAPL", fridayBefore, 181.18)
	m.Append("AAPL", date.New(2024, time.December, 27), 255.59)
	m.Append("AAPL", lastTradingDay, 251.92)

	m.Append("MSFT", date.New(2024, time.January, 2), 370.87)
	m.Append("MSFT", firstTradingDay, 367.11)
	m.Append("MSFT", fridayBefore, 367.75)
	m.Append("MSFT", date.New(2024, time.December, 27), 430.53)
	m.Append("MSFT", lastTradingDay, 423.98)

	m.Append("GOOGL", date.New(2024, time.January, 2), 139.56)
	m.Append("GOOGL", firstTradingDay, 138.26)
	m.Append("GOOGL", fridayBefore, 136.39)
	m.Append("GOOGL", date.New(2024, time.December, 27), 193.97)
	m.Append("GOOGL", lastTradingDay, 191.02)

	return m
}

// scenarioPortfolio returns the worked-example portfolio: 10 AAPL, 5 MSFT,
// 3 GOOGL, reported in USD.
func scenarioPortfolio(t *testing.T) *Portfolio {
	t.Helper()
	p := NewPortfolio("USD")
	if err := p.AddStock("AAPL", "Apple Inc.", Q(10)); err != nil {
		t.Fatalf("AddStock(AAPL) error = %v", err)
	}
	if err := p.AddStock("MSFT", "Microsoft Corporation", Q(5)); err != nil {
		t.Fatalf("AddStock(MSFT) error = %v", err)
	}
	if err := p.AddStock("GOOGL", "Alphabet Inc.", Q(3)); err != nil {
		t.Fatalf("AddStock(GOOGL) error = %v", err)
	}
	return p
}

// countingProvider wraps a PriceProvider and counts Fetch calls.
type countingProvider struct {
	inner PriceProvider
	calls int
}

func (c *countingProvider) Fetch(symbol string, on date.Date) (float64, error) {
	c.calls++
	return c.inner.Fetch(symbol, on)
}
