package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// toolConfig holds lexdiag's optional on-disk defaults, the way the
// teacher's internal/cli/config.Config held conduit.yaml defaults:
// command-line flags always win, a config file only changes what a
// flag did not set.
type toolConfig struct {
	NoColor bool `mapstructure:"no_color"`
	JSON    bool `mapstructure:"json"`
}

// loadConfig reads .lexdiag.yaml (or .lexdiag.yml) from the current
// directory if present, falling back to zero-value defaults when it is
// not. A missing config file is not an error; a malformed one is.
func loadConfig() (*toolConfig, error) {
	v := viper.New()
	v.SetConfigName(".lexdiag")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetDefault("no_color", false)
	v.SetDefault("json", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read .lexdiag.yaml: %w", err)
		}
	}

	var cfg toolConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse .lexdiag.yaml: %w", err)
	}
	return &cfg, nil
}
