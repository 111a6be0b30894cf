package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
)

// Config holds runtime settings for the Aroma CLI.
//
// Units: MenuFetchTimeout and PromoInterval are time.Duration values.
type Config struct {
	StorageBackend string
	SQLitePath     string
	RedisAddr      string
	RedisPrefix    string

	// MenuSource is an http(s) URL or a file path; empty means built-in menu only.
	MenuSource       string
	MenuFetchTimeout time.Duration

	PromoInterval time.Duration

	// Logger selects the logging backend: "slog" or "zap".
	Logger   string
	LogLevel string
	LogFile  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = storage.BackendSQLite
	c.SQLitePath = "aroma.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPrefix = kv.DefaultRedisPrefix
	c.MenuSource = "menu-items.json"
	c.MenuFetchTimeout = 5 * time.Second
	c.PromoInterval = 10 * time.Second
	c.Logger = "slog"
	c.LogLevel = "info"
	c.LogFile = "aroma.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
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

// StorageOptions converts the storage settings for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.StorageBackend,
		SQLitePath:  c.SQLitePath,
		RedisAddr:   c.RedisAddr,
		RedisPrefix: c.RedisPrefix,
	}
}
