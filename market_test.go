package folio

import (
	"errors"
	"testing"
	"time"

	"github.com/foliokit/folio/date"
)

func TestMarket_Fetch(t *testing.T) {
	m := scenarioMarket()

	price, err := m.Fetch("AAPL", firstTradingDay)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if price != 183.15 {
		t.Errorf("Fetch() = %v, want 183.15", price)
	}
}

func TestMarket_FetchNonTradingDay(t *testing.T) {
	m := scenarioMarket()

	_, err := m.Fetch("AAPL", saturday)
	if !errors.Is(err, ErrNoTradingData) {
		t.Errorf("Fetch(saturday) error = %v, want ErrNoTradingData", err)
	}
}

func TestMarket_FetchUnknownSymbol(t *testing.T) {
	m := scenarioMarket()

	_, err := m.Fetch("ZZZZ", firstTradingDay)
	if !errors.Is(err, ErrNoTradingData) {
		t.Errorf("Fetch(unknown) error = %v, want ErrNoTradingData", err)
	}
	if m.Has("ZZZZ") {
		t.Errorf("Has(ZZZZ) = true, want false")
	}
}

func TestMarket_AppendOverwrites(t *testing.T) {
	m := NewMarket()
	on := date.New(2024, time.June, 3)
	m.Append("AAPL", on, 100)
	m.Append("AAPL", on, 101)

	price, err := m.Fetch("AAPL", on)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if price != 101 {
		t.Errorf("Fetch() = %v, want the overwritten price 101", price)
	}
	if got := m.Symbols(); len(got) != 1 || got[0] != "AAPL" {
		t.Errorf("Symbols() = %v, want [AAPL]", got)
	}
}

func TestMarket_SymbolsIsACopy(t *testing.T) {
	m := scenarioMarket()

	got := m.Symbols()
	got[0] = "HACK"
	if again := m.Symbols(); again[0] != "AAPL" {
		t.Errorf("Symbols()[0] = %s after caller mutation, want AAPL", again[0])
	}
}
