package folio

import "github.com/foliokit/folio/date"

type priceKey struct {
	symbol string
	on     date.Date
}

// PriceCache memoizes price resolutions per (symbol, day) for the lifetime
// of one run. There is no eviction: a run touches a handful of pairs.
//
// The cache is an explicit object rather than package state so tests get a
// fresh one, and sharing between portfolios is a caller's choice.
type PriceCache struct {
	entries map[priceKey]ResolvedPrice
}

// NewPriceCache returns a new empty cache.
func NewPriceCache() *PriceCache {
	return &PriceCache{entries: make(map[priceKey]ResolvedPrice)}
}

// Get returns the resolution cached for (symbol, on).
func (c *PriceCache) Get(symbol string, on date.Date) (ResolvedPrice, bool) {
	rp, ok := c.entries[priceKey{symbol, on}]
	return rp, ok
}

// Put records a resolution for (symbol, on). A later Put overwrites.
func (c *PriceCache) Put(symbol string, on date.Date, rp ResolvedPrice) {
	c.entries[priceKey{symbol, on}] = rp
}

// Len returns the number of cached entries.
func (c *PriceCache) Len() int { return len(c.entries) }
