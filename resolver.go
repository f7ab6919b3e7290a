package folio

import (
	"errors"
	"fmt"

	"github.com/foliokit/folio/date"
)

// DefaultLookbackDays bounds the backward search for a trading day. A week
// covers any weekend plus a holiday bridge.
const DefaultLookbackDays = 7

// ResolvedPrice is the closing price actually used for a requested day.
// On is the trading day that produced the price; it equals Requested unless
// that day was a non-trading day, and is never after it.
type ResolvedPrice struct {
	Requested date.Date
	On        date.Date
	Price     float64
}

// Resolver maps a possibly non-trading requested day to the most recent
// trading day with an available price, searching backward one calendar day
// at a time within a bounded window. Lookups go through a PriceCache first.
type Resolver struct {
	provider PriceProvider
	cache    *PriceCache
	lookback int
}

// NewResolver returns a Resolver reading prices from provider, memoizing in
// cache. A nil cache gets a private fresh one. A non-positive lookbackDays
// falls back to DefaultLookbackDays.
func NewResolver(provider PriceProvider, cache *PriceCache, lookbackDays int) *Resolver {
	if cache == nil {
		cache = NewPriceCache()
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Resolver{provider: provider, cache: cache, lookback: lookbackDays}
}

// LookbackDays returns the configured search bound.
func (r *Resolver) LookbackDays() int { return r.lookback }

// Resolve returns the closing price of symbol on the latest trading day at
// or before 'on', within the lookback window.
//
// Only ErrNoTradingData makes the search step one day back: any other
// provider failure aborts immediately, a network error says nothing about
// the market being closed. An exhausted window fails with
// *PriceUnavailableError; the caller must treat it as terminal, never as a
// zero price.
func (r *Resolver) Resolve(symbol string, on date.Date) (ResolvedPrice, error) {
	window := date.NewRange(on.Add(-r.lookback), on)
	for day := on; window.Contains(day); day = day.Add(-1) {
		if rp, ok := r.cache.Get(symbol, day); ok {
			// The days probed before this hit get aliased too, a repeated
			// request for any of them must not reach the provider again.
			for d := on; d.After(day); d = d.Add(-1) {
				r.cache.Put(symbol, d, ResolvedPrice{Requested: d, On: rp.On, Price: rp.Price})
			}
			rp.Requested = on
			return rp, nil
		}
		price, err := r.provider.Fetch(symbol, day)
		if errors.Is(err, ErrNoTradingData) {
			continue
		}
		if err != nil {
			return ResolvedPrice{}, fmt.Errorf("fetching %s on %s: %w", symbol, day, err)
		}
		// Alias every probed day down to the hit onto the same resolution, so
		// re-resolving any of them never calls the provider again.
		for d := on; !d.Before(day); d = d.Add(-1) {
			r.cache.Put(symbol, d, ResolvedPrice{Requested: d, On: day, Price: price})
		}
		return ResolvedPrice{Requested: on, On: day, Price: price}, nil
	}
	return ResolvedPrice{}, &PriceUnavailableError{Symbol: symbol, On: on, LookbackDays: r.lookback}
}
