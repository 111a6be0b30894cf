// Package config handles configuration for the menu server, including
// defaults, a JSON or YAML file overlay, and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the menu server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP endpoint.
//   - MenuFile: JSON or YAML menu description; empty serves the built-in menu.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - Logger: "slog" or "zap".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr      string
	MenuFile        string
	ShutdownTimeout time.Duration
	Logger          string
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8090"
	c.MenuFile = ""
	c.ShutdownTimeout = 5 * time.Second
	c.Logger = "slog"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
