package config

import (
	"flag"

	"github.com/dmitrijs2005/aroma/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g., ":8090")
//	-f string   menu description file
//	-l string   logger backend (slog|zap)
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-f", "-l"})

	fs := flag.NewFlagSet("menuserver", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.MenuFile, "f", config.MenuFile, "menu description file (json or yaml)")
	fs.StringVar(&config.Logger, "l", config.Logger, "logger backend")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
