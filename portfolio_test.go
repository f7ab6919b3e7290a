package folio

import (
	"errors"
	"testing"
)

func TestPortfolio_AddStock(t *testing.T) {
	p := NewPortfolio("USD")
	if err := p.AddStock("AAPL", "Apple Inc.", Q(10)); err != nil {
		t.Fatalf("AddStock() error = %v", err)
	}
	if !p.Has("AAPL") {
		t.Errorf("Has(AAPL) = false after add")
	}

	if err := p.AddStock("MSFT", "Microsoft Corporation", Q(0)); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("AddStock(qty 0) error = %v, want ErrInvalidQuantity", err)
	}
	if err := p.AddStock("MSFT", "Microsoft Corporation", Q(-5)); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("AddStock(qty -5) error = %v, want ErrInvalidQuantity", err)
	}
	if err := p.AddStock("AAPL", "Apple Inc.", Q(1)); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("AddStock(held symbol) error = %v, want ErrDuplicateSymbol", err)
	}
	// The failed adds must not have touched the portfolio.
	if got := len(p.Positions()); got != 1 {
		t.Errorf("len(Positions()) = %d, want 1", got)
	}
}

func TestPortfolio_SetQuantity(t *testing.T) {
	p := scenarioPortfolio(t)

	if err := p.SetQuantity("AAPL", Q(20)); err != nil {
		t.Fatalf("SetQuantity() error = %v", err)
	}
	if got := p.Positions()[0].Quantity; !got.Equal(Q(20)) {
		t.Errorf("quantity = %s, want 20", got)
	}

	if err := p.SetQuantity("TSLA", Q(1)); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("SetQuantity(absent) error = %v, want ErrUnknownSymbol", err)
	}
	if err := p.SetQuantity("AAPL", Q(0)); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("SetQuantity(0) error = %v, want ErrInvalidQuantity", err)
	}
}

func TestPortfolio_RemoveStock(t *testing.T) {
	p := scenarioPortfolio(t)

	if err := p.RemoveStock("MSFT"); err != nil {
		t.Fatalf("RemoveStock() error = %v", err)
	}
	if p.Has("MSFT") {
		t.Errorf("Has(MSFT) = true after removal")
	}
	if err := p.RemoveStock("MSFT"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("RemoveStock(absent) error = %v, want ErrUnknownSymbol", err)
	}

	// Remaining positions keep their insertion order.
	got := p.Positions()
	if len(got) != 2 || got[0].Symbol != "AAPL" || got[1].Symbol != "GOOGL" {
		t.Errorf("Positions() = %v, want [AAPL GOOGL]", got)
	}
}

func TestPortfolio_RemoveThenReAdd(t *testing.T) {
	p := scenarioPortfolio(t)
	r := NewResolver(scenarioMarket(), nil, 0)

	if err := p.RemoveStock("GOOGL"); err != nil {
		t.Fatalf("RemoveStock() error = %v", err)
	}
	if err := p.AddStock("GOOGL", "Alphabet Inc.", Q(3)); err != nil {
		t.Fatalf("re-AddStock() error = %v", err)
	}

	// Re-adding restores the ability to value it.
	report, err := p.ValueOn(r, firstTradingDay)
	if err != nil {
		t.Fatalf("ValueOn() error = %v", err)
	}
	if !report.Total.Equal(USD(4081.83)) {
		t.Errorf("Total = %s, want $4,081.83", report.Total)
	}
}

func TestPortfolio_PositionsIsACopy(t *testing.T) {
	p := scenarioPortfolio(t)
	p.Positions()[0].Quantity = Q(999)
	if got := p.Positions()[0].Quantity; !got.Equal(Q(10)) {
		t.Errorf("mutating the returned slice leaked into the portfolio")
	}
}
