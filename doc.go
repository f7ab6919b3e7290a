// Package folio values a static stock portfolio from historical daily
// closing prices.
//
// A Portfolio holds positions (symbol, display name, quantity). Prices come
// from a PriceProvider, memoized in a PriceCache and resolved by a Resolver
// that walks backward over calendar days when the requested day was not a
// trading day. From two valuations, Evaluate derives the profit and the
// annualized return over the period.
//
// Everything is in-memory and single-threaded: one run builds a portfolio,
// values it, and exits.
package folio
