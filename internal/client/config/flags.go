package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/aroma/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   storage backend: sqlite, memory or redis
//	-d string   sqlite database file
//	-r string   redis address
//	-m string   menu source (URL or file)
//	-p int      promo rotation interval in seconds
//	-l string   logger backend: slog or zap
//
// Only the flags above are parsed; the rest of args is ignored. -p replaces
// the interval only when given, so a sub-second file value survives.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-s", "-d", "-r", "-m", "-p", "-l"})

	fs := flag.NewFlagSet("aroma", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite|memory|redis)")
	fs.StringVar(&cfg.SQLitePath, "d", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.MenuSource, "m", cfg.MenuSource, "menu source, URL or file")
	promoInterval := fs.Int("p", int(cfg.PromoInterval.Seconds()), "promo rotation interval (in seconds)")
	fs.StringVar(&cfg.Logger, "l", cfg.Logger, "logger backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "p" {
			cfg.PromoInterval = time.Duration(*promoInterval) * time.Second
		}
	})
}
