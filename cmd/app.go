// Package cmd implements the CLI application to value a stock portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/foliokit/folio"
	"github.com/foliokit/folio/alphavantage"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&valueCmd{}, "reports")
	c.Register(&perfCmd{}, "reports")
	c.Register(&demoCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

const apiKeyEnv = "ALPHAVANTAGE_API_KEY"

var apiKeyFlag = flag.String("alphavantage-api-key", "", "Alpha Vantage API key used to fetch prices.\n If missing it will be read from the environment variable \""+apiKeyEnv+"\". You can get one at https://www.alphavantage.co/")
var configFlag = flag.String("config", "", "Path to a TOML configuration file (defaults to "+defaultConfigFile+" when present)")

// apiKey resolves the API key: flag first, then environment, then config file.
func apiKey(cfg Config) string {
	if *apiKeyFlag != "" {
		return *apiKeyFlag
	}
	if k := os.Getenv(apiKeyEnv); k != "" {
		return k
	}
	return cfg.APIKey
}

// newResolver wires the live price provider behind a fresh cache.
func newResolver(cfg Config) (*folio.Resolver, error) {
	key := apiKey(cfg)
	if key == "" {
		return nil, fmt.Errorf("no Alpha Vantage API key: set -alphavantage-api-key, %s, or api_key in %s", apiKeyEnv, defaultConfigFile)
	}
	provider := alphavantage.New(key, log.Logger)
	return folio.NewResolver(provider, folio.NewPriceCache(), cfg.LookbackDays), nil
}
