package folio

import "github.com/foliokit/folio/date"

// PriceProvider supplies the closing price of a symbol on an exact day.
//
// Implementations return an error wrapping ErrNoTradingData when the market
// was closed on that day. Any other error is a data-source failure (network,
// auth, rate limit) and must never be mistaken for a closed market.
type PriceProvider interface {
	Fetch(symbol string, on date.Date) (float64, error)
}
