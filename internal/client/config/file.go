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

// FileConfig is a DTO used exclusively for file unmarshalling. Durations use
// timex.Duration so files can say "10s" or give integer nanoseconds.
type FileConfig struct {
	StorageBackend   string          `json:"storage" yaml:"storage"`
	SQLitePath       string          `json:"sqlite_path" yaml:"sqlite_path"`
	RedisAddr        string          `json:"redis_addr" yaml:"redis_addr"`
	RedisPrefix      string          `json:"redis_prefix" yaml:"redis_prefix"`
	MenuSource       string          `json:"menu_source" yaml:"menu_source"`
	MenuFetchTimeout timex.Duration  `json:"menu_fetch_timeout" yaml:"menu_fetch_timeout"`
	PromoInterval    *timex.Duration `json:"promo_interval" yaml:"promo_interval"`
	Logger           string          `json:"logger" yaml:"logger"`
	LogLevel         string          `json:"log_level" yaml:"log_level"`
	LogFile          string          `json:"log_file" yaml:"log_file"`
}

// parseFile overlays cfg with the non-empty values of the file named by -c or
// -config. Files ending in .yaml or .yml are read as YAML, anything else as
// JSON. Panics on read or decode errors.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, fc.StorageBackend)
	setString(&cfg.SQLitePath, fc.SQLitePath)
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.RedisPrefix, fc.RedisPrefix)
	setString(&cfg.MenuSource, fc.MenuSource)
	setString(&cfg.Logger, fc.Logger)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.LogFile, fc.LogFile)
	if fc.MenuFetchTimeout.Duration > 0 {
		cfg.MenuFetchTimeout = fc.MenuFetchTimeout.Duration
	}
	// zero is meaningful here: it turns promo rotation off
	if fc.PromoInterval != nil {
		cfg.PromoInterval = fc.PromoInterval.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
