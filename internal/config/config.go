// Package config holds the runtime configuration for uptop and the logic
// to assemble it from defaults, environment variables, and command flags.
package config

import "time"

const (
	// DefaultInterval is the pause between poll cycle starts.
	DefaultInterval = 10 * time.Second
	// DefaultTimeout bounds each individual check.
	DefaultTimeout = 5 * time.Second
)

// Config is the fully resolved runtime configuration.
type Config struct {
	// Targets are the URLs to monitor, in display order.
	Targets []string `mapstructure:"targets"`

	// Interval is the time between poll cycle starts.
	Interval time.Duration `mapstructure:"interval"`

	// Timeout bounds each individual HTTP check.
	Timeout time.Duration `mapstructure:"timeout"`

	// StrictHTTP treats completed responses with status >= 400 as down.
	StrictHTTP bool `mapstructure:"strict-http"`

	// Plain disables the interactive dashboard and prints table snapshots.
	Plain bool `mapstructure:"plain"`

	// NoColor strips ANSI styling from all output.
	NoColor bool `mapstructure:"no-color"`
}

// DefaultConfig returns a config with defaults applied and no targets.
func DefaultConfig() *Config {
	return &Config{
		Interval: DefaultInterval,
		Timeout:  DefaultTimeout,
	}
}
