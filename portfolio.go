package folio

import (
	"fmt"
	"slices"
)

// Position is one holding: a ticker symbol, its display name, and the
// quantity of shares held.
type Position struct {
	Symbol   string
	Name     string
	Quantity Quantity
}

// Portfolio is an ordered collection of positions, at most one per symbol.
// Insertion order is preserved and drives the report layout.
//
// Quantities are a static snapshot: the same shares are assumed held over
// any queried period.
type Portfolio struct {
	currency  string
	positions []Position
	index     map[string]int
}

// NewPortfolio returns an empty portfolio reporting in the given currency
// (e.g. "USD"). The currency drives money formatting; provider prices are
// assumed quoted in it.
func NewPortfolio(currency string) *Portfolio {
	return &Portfolio{currency: currency, index: make(map[string]int)}
}

// Currency returns the reporting currency.
func (p *Portfolio) Currency() string { return p.currency }

// Has reports whether the portfolio holds symbol.
func (p *Portfolio) Has(symbol string) bool {
	_, ok := p.index[symbol]
	return ok
}

// Positions returns a copy of the positions in insertion order.
func (p *Portfolio) Positions() []Position { return slices.Clone(p.positions) }

// AddStock appends a new position. The quantity must be strictly positive,
// and the symbol must not be held yet: changing an existing position is an
// explicit SetQuantity, not a repeated add.
func (p *Portfolio) AddStock(symbol, name string, qty Quantity) error {
	if !qty.IsPositive() {
		return fmt.Errorf("add %s: quantity %s: %w", symbol, qty, ErrInvalidQuantity)
	}
	if _, ok := p.index[symbol]; ok {
		return fmt.Errorf("add %s: %w", symbol, ErrDuplicateSymbol)
	}
	p.index[symbol] = len(p.positions)
	p.positions = append(p.positions, Position{Symbol: symbol, Name: name, Quantity: qty})
	return nil
}

// SetQuantity replaces the quantity of an existing position.
func (p *Portfolio) SetQuantity(symbol string, qty Quantity) error {
	if !qty.IsPositive() {
		return fmt.Errorf("set %s: quantity %s: %w", symbol, qty, ErrInvalidQuantity)
	}
	i, ok := p.index[symbol]
	if !ok {
		return fmt.Errorf("set %s: %w", symbol, ErrUnknownSymbol)
	}
	p.positions[i].Quantity = qty
	return nil
}

// RemoveStock drops the position holding symbol. Removing an absent symbol
// is an error: callers must know whether the removal happened.
func (p *Portfolio) RemoveStock(symbol string) error {
	i, ok := p.index[symbol]
	if !ok {
		return fmt.Errorf("remove %s: %w", symbol, ErrUnknownSymbol)
	}
	p.positions = slices.Delete(p.positions, i, i+1)
	delete(p.index, symbol)
	for s, j := range p.index {
		if j > i {
			p.index[s] = j - 1
		}
	}
	return nil
}
