// Package config loads runtime configuration for the Aroma CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # File schema
//
// Durations accept strings like "10s" or integer nanoseconds. Empty or missing
// keys keep the earlier value, except promo_interval, where 0s turns promo
// rotation off:
//
//	storage: redis
//	redis_addr: 127.0.0.1:6379
//	menu_source: http://127.0.0.1:8090/menu-items.json
//	menu_fetch_timeout: 3s
//	promo_interval: 10s
//	logger: zap
//	log_level: debug
//
// The package does not read environment variables.
package config
