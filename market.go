package folio

import (
	"fmt"
	"slices"

	"github.com/foliokit/folio/date"
)

// Market holds daily closing prices for a set of symbols, in memory.
//
// It implements PriceProvider and is the deterministic data source used in
// tests and by the demo command. Days absent from a symbol's history are
// non-trading days.
type Market struct {
	symbols []string
	index   map[string]*date.History[float64]
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{index: make(map[string]*date.History[float64])}
}

// Has reports whether the market holds any price for ticker.
func (m *Market) Has(symbol string) bool {
	_, ok := m.index[symbol]
	return ok
}

// Symbols returns a copy of the known symbols in insertion order.
func (m *Market) Symbols() []string { return slices.Clone(m.symbols) }

// Append records the closing price of symbol on a given day. An existing
// price on that day is overwritten.
func (m *Market) Append(symbol string, on date.Date, price float64) {
	h, ok := m.index[symbol]
	if !ok {
		h = &date.History[float64]{}
		m.index[symbol] = h
		m.symbols = append(m.symbols, symbol)
	}
	h.Append(on, price)
}

// Fetch implements PriceProvider. An unknown symbol behaves like a symbol
// that never traded.
func (m *Market) Fetch(symbol string, on date.Date) (float64, error) {
	h, ok := m.index[symbol]
	if !ok {
		return 0, fmt.Errorf("%s has no market data: %w", symbol, ErrNoTradingData)
	}
	price, ok := h.Get(on)
	if !ok {
		return 0, fmt.Errorf("%s on %s: %w", symbol, on, ErrNoTradingData)
	}
	return price, nil
}

var _ PriceProvider = (*Market)(nil)
