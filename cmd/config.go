package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/foliokit/folio"
)

// defaultConfigFile is looked up in the working directory when -config is not set.
const defaultConfigFile = "folio.toml"

// Config holds the optional TOML configuration.
type Config struct {
	APIKey       string `toml:"api_key"`
	Currency     string `toml:"currency"`
	LookbackDays int    `toml:"lookback_days"`
}

// LoadConfig reads the TOML configuration from path, or from the default
// file. A missing default file is not an error, defaults apply; a missing
// explicit -config file is.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Currency: "USD", LookbackDays: folio.DefaultLookbackDays}
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = folio.DefaultLookbackDays
	}
	return cfg, nil
}
