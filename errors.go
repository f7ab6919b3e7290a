package folio

import (
	"errors"
	"fmt"

	"github.com/foliokit/folio/date"
)

// Domain error kinds. They are wrapped with context (symbol, dates) at the
// call site; test for them with errors.Is.
var (
	// ErrNoTradingData is returned by a PriceProvider when the market has no
	// closing price for that exact day (weekend, holiday, pre-listing). It is
	// the only provider error the Resolver recovers from.
	ErrNoTradingData = errors.New("no trading data")

	// ErrInvalidQuantity rejects a non-positive quantity on add or update.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrDuplicateSymbol rejects adding a symbol already held.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrUnknownSymbol rejects an update or removal of a symbol not held.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInvalidDateRange rejects a performance period whose end is not
	// strictly after its start.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrZeroBaseValue rejects annualizing from a start value that is zero or
	// negative.
	ErrZeroBaseValue = errors.New("zero base value")

	// ErrPeriodTooShort rejects annualizing over a span too small to be
	// numerically meaningful.
	ErrPeriodTooShort = errors.New("period too short")
)

// PriceUnavailableError reports that no trading price was found for a symbol
// within the lookback window ending on the requested day. It is terminal:
// the valuation that triggered it must fail rather than substitute a zero.
type PriceUnavailableError struct {
	Symbol       string
	On           date.Date
	LookbackDays int
}

func (e *PriceUnavailableError) Error() string {
	return fmt.Sprintf("no price for %s on %s (searched %d days back)", e.Symbol, e.On, e.LookbackDays)
}
