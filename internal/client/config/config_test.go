package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/aroma/internal/client/storage"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, storage.BackendSQLite, c.StorageBackend)
	assert.Equal(t, "aroma.db", c.SQLitePath)
	assert.Equal(t, "aroma:", c.RedisPrefix)
	assert.Equal(t, 10*time.Second, c.PromoInterval)
	assert.Equal(t, 5*time.Second, c.MenuFetchTimeout)
	assert.Equal(t, "slog", c.Logger)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_NoArgsGivesDefaults(t *testing.T) {
	assert.Empty(t, cmp.Diff(defaults(), load(nil)))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		mutate      func(*Config)
	}{
		{
			name: "all flags",
			args: []string{"-s", "redis", "-r", "10.0.0.1:6380", "-d", "x.db", "-m", "http://m/menu.json", "-p", "3", "-l", "zap"},
			mutate: func(c *Config) {
				c.StorageBackend = "redis"
				c.RedisAddr = "10.0.0.1:6380"
				c.SQLitePath = "x.db"
				c.MenuSource = "http://m/menu.json"
				c.PromoInterval = 3 * time.Second
				c.Logger = "zap"
			},
		},
		{
			name:   "unknown flags ignored",
			args:   []string{"-x", "1", "-s=memory", "--verbose"},
			mutate: func(c *Config) { c.StorageBackend = "memory" },
		},
		{name: "bad interval", args: []string{"-p", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			want := defaults()
			tt.mutate(want)
			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{
		"storage": "memory",
		"menu_source": "menu.yaml",
		"menu_fetch_timeout": "2s",
		"promo_interval": 4000000000
	}`)

	cfg := defaults()
	parseFile(cfg, []string{"-config", path})

	want := defaults()
	want.StorageBackend = "memory"
	want.MenuSource = "menu.yaml"
	want.MenuFetchTimeout = 2 * time.Second
	want.PromoInterval = 4 * time.Second
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTemp(t, "cfg.yml", "storage: redis\nredis_addr: cache:6379\nredis_prefix: \"test:\"\nlogger: zap\npromo_interval: 1m\n")

	cfg := defaults()
	parseFile(cfg, []string{"-c", path})

	assert.Equal(t, "redis", cfg.StorageBackend)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "test:", cfg.RedisPrefix)
	assert.Equal(t, "zap", cfg.Logger)
	assert.Equal(t, time.Minute, cfg.PromoInterval)
	assert.Equal(t, "aroma.db", cfg.SQLitePath)
}

func TestParseFile_Errors(t *testing.T) {
	bad := writeTemp(t, "bad.json", `{ this is not valid json`)
	require.Panics(t, func() { parseFile(defaults(), []string{"-c", bad}) })

	missing := filepath.Join(t.TempDir(), "absent.yaml")
	require.Panics(t, func() { parseFile(defaults(), []string{"-c", missing}) })
}

func TestLoad_PromoIntervalFromFile(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string
		want time.Duration
	}{
		{name: "sub-second precision kept", body: "promo_interval: 2500ms\n", want: 2500 * time.Millisecond},
		{name: "below one second", body: "promo_interval: 500ms\n", want: 500 * time.Millisecond},
		{name: "zero disables rotation", body: "promo_interval: 0s\n", want: 0},
		{name: "absent keeps default", body: "logger: zap\n", want: 10 * time.Second},
		{name: "flag wins over file", body: "promo_interval: 2500ms\n", args: []string{"-p", "7"}, want: 7 * time.Second},
		{name: "flag can disable", body: "promo_interval: 30s\n", args: []string{"-p", "0"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "cfg.yaml", tt.body)

			cfg := load(append([]string{"-c", path}, tt.args...))

			assert.Equal(t, tt.want, cfg.PromoInterval)
		})
	}
}

func TestLoad_LogLevelFromFile(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"log_level": "debug", "log_file": "logs/aroma.log"}`)

	cfg := load([]string{"-config", path})

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logs/aroma.log", cfg.LogFile)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{"storage": "redis", "logger": "zap"}`)

	cfg := load([]string{"-c", path, "-s", "memory"})

	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "zap", cfg.Logger)
}

func TestStorageOptions(t *testing.T) {
	cfg := defaults()
	cfg.StorageBackend = storage.BackendRedis

	assert.Equal(t, storage.Options{
		Backend:     storage.BackendRedis,
		SQLitePath:  "aroma.db",
		RedisAddr:   "127.0.0.1:6379",
		RedisPrefix: "aroma:",
	}, cfg.StorageOptions())
}
