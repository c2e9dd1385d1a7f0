package config

import (
	"os"

	"holdem-engine/internal/util"
	"holdem-engine/pkg/holdem"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides table configuration for the dealer
type Config struct {
	loaded     bool
	BuyIn      int    `yaml:"buyIn" envconfig:"buy_in"`
	SmallBlind int    `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int    `yaml:"bigBlind" envconfig:"big_blind"`
	LogLevel   string `yaml:"logLevel" envconfig:"log_level"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present
func DefaultConfig() Config {
	opts := holdem.DefaultOptions()

	return Config{
		BuyIn:      opts.BuyIn,
		SmallBlind: opts.SmallBlind,
		BigBlind:   opts.BigBlind,
		LogLevel:   "info",
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults apply and the environment may still override them.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// Options returns the table options described by the configuration
func (c Config) Options() holdem.Options {
	return holdem.Options{
		BuyIn:      c.BuyIn,
		SmallBlind: c.SmallBlind,
		BigBlind:   c.BigBlind,
	}
}
