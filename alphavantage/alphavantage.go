// Package alphavantage implements folio.PriceProvider on top of the Alpha
// Vantage TIME_SERIES_DAILY endpoint.
//
// The full daily series of a symbol is fetched once (outputsize=full) and
// kept for the lifetime of the client, so valuing a portfolio at several
// dates costs one request per symbol. HTTP responses are additionally cached
// on disk with a daily expiry, which keeps repeated runs under the service's
// free-tier rate limit.
package alphavantage

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rs/zerolog"

	"github.com/foliokit/folio"
	"github.com/foliokit/folio/date"
)

const apiURL = "https://www.alphavantage.co/query"

// Client fetches daily closing prices from Alpha Vantage.
type Client struct {
	apiKey string
	base   string
	client *http.Client
	log    zerolog.Logger
	series map[string]*date.History[float64]
}

// New returns a client for the live service. Get an API key at
// https://www.alphavantage.co/support/#api-key
func New(apiKey string, logger zerolog.Logger) *Client {
	return newClient(apiKey, apiURL, daily(), logger)
}

// NewWith returns a client hitting base through hc. Tests point it at a
// local fake server.
func NewWith(apiKey, base string, hc *http.Client, logger zerolog.Logger) *Client {
	return newClient(apiKey, base, hc, logger)
}

func newClient(apiKey, base string, hc *http.Client, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: apiKey,
		base:   base,
		client: hc,
		log:    logger.With().Str("component", "alphavantage").Logger(),
		series: make(map[string]*date.History[float64]),
	}
}

// Fetch implements folio.PriceProvider: the closing price of symbol on that
// exact day, or folio.ErrNoTradingData when the series has no entry for it.
func (c *Client) Fetch(symbol string, on date.Date) (float64, error) {
	h, err := c.daily(symbol)
	if err != nil {
		return 0, err
	}
	price, ok := h.Get(on)
	if !ok {
		return 0, fmt.Errorf("%s on %s: %w", symbol, on, folio.ErrNoTradingData)
	}
	return price, nil
}

var _ folio.PriceProvider = (*Client)(nil)

// daily returns the symbol's full daily close series, fetching it on first use.
func (c *Client) daily(symbol string) (*date.History[float64], error) {
	if h, ok := c.series[symbol]; ok {
		return h, nil
	}

	addr := fmt.Sprintf("%s?function=TIME_SERIES_DAILY&symbol=%s&outputsize=full&apikey=%s",
		c.base, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("alphavantage %s: %w", symbol, err)
	}
	// Alpha Vantage reports errors and rate limiting inside a 200 response.
	if msg := apiMessage(jobj); msg != "" {
		return nil, fmt.Errorf("alphavantage %s: %s", symbol, msg)
	}

	jval, err := jsonpath.Get("$['Time Series (Daily)']", jobj)
	if err != nil {
		return nil, fmt.Errorf("alphavantage %s: no daily time series in response: %w", symbol, err)
	}
	days, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("alphavantage %s: daily time series is not an object", symbol)
	}

	h := &date.History[float64]{}
	for day, jfields := range days {
		on, err := date.Parse(day)
		if err != nil {
			return nil, fmt.Errorf("alphavantage %s: %w", symbol, err)
		}
		fields, ok := jfields.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("alphavantage %s on %s: not an object", symbol, on)
		}
		// all numbers come quoted
		sval, ok := fields["4. close"].(string)
		if !ok {
			return nil, fmt.Errorf("alphavantage %s on %s: no close price", symbol, on)
		}
		close, err := strconv.ParseFloat(sval, 64)
		if err != nil {
			return nil, fmt.Errorf("alphavantage %s on %s: close %q: %w", symbol, on, sval, err)
		}
		h.Append(on, close)
	}
	c.log.Debug().Str("symbol", symbol).Int("days", h.Len()).Msg("fetched daily series")
	c.series[symbol] = h
	return h, nil
}

// apiMessage extracts the error or throttling note Alpha Vantage returns
// with a 200 status, or "".
func apiMessage(jobj any) string {
	for _, key := range []string{"Error Message", "Note", "Information"} {
		jval, err := jsonpath.Get(fmt.Sprintf("$['%s']", key), jobj)
		if err != nil {
			continue
		}
		if s, ok := jval.(string); ok && s != "" {
			return s
		}
	}
	return ""
}
