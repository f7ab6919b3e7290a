package cmd

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio"
)

// parsePositions builds a portfolio from SYMBOL:QUANTITY[:NAME] arguments,
// in argument order.
func parsePositions(currency string, args []string) (*folio.Portfolio, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no positions: expected arguments like AAPL:10:'Apple Inc.'")
	}
	p := folio.NewPortfolio(currency)
	for _, arg := range args {
		parts := strings.SplitN(arg, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid position %q: want SYMBOL:QUANTITY[:NAME]", arg)
		}
		symbol := strings.ToUpper(strings.TrimSpace(parts[0]))
		if symbol == "" {
			return nil, fmt.Errorf("invalid position %q: empty symbol", arg)
		}
		qty, err := folio.ParseQuantity(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", arg, err)
		}
		name := symbol
		if len(parts) == 3 && parts[2] != "" {
			name = parts[2]
		}
		if err := p.AddStock(symbol, name, qty); err != nil {
			return nil, err
		}
	}
	return p, nil
}
