package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/aroma/internal/flagx"
	"github.com/dmitrijs2005/aroma/internal/timex"
)

// FileConfig is the DTO read from the -c/-config file.
type FileConfig struct {
	ListenAddr      string         `json:"listen_addr" yaml:"listen_addr"`
	MenuFile        string         `json:"menu_file" yaml:"menu_file"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	Logger          string         `json:"logger" yaml:"logger"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays config with the non-empty values of the config file.
// Panics if the file cannot be read or decoded.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	if c.ListenAddr != "" {
		config.ListenAddr = c.ListenAddr
	}
	if c.MenuFile != "" {
		config.MenuFile = c.MenuFile
	}
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.Logger != "" {
		config.Logger = c.Logger
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
