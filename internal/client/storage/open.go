package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/aroma/internal/client/migrations"
	"github.com/dmitrijs2005/aroma/internal/client/repositories/kv"
	"github.com/dmitrijs2005/aroma/internal/common"
	"github.com/dmitrijs2005/aroma/internal/filex"

	_ "modernc.org/sqlite"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Options selects and configures the storage backend.
type Options struct {
	Backend     string
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
}

// RunMigrations brings the SQLite schema up to date. Safe to call repeatedly.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenSQLite opens (creating if needed) the database file at path and
// migrates it.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	// BEGIN IMMEDIATE so read-modify-write transactions take the write lock up front.
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if path == ":memory:" {
		// every connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}
	return db, nil
}

// Open builds the repository named by opts.Backend and wraps it in a Store.
func Open(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Backend {
	case "", BackendSQLite:
		db, err := OpenSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return New(kv.NewSQLiteRepository(db)), nil

	case BackendMemory:
		return New(kv.NewMemoryRepository()), nil

	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("ping redis %s: %w", opts.RedisAddr, err)
		}
		prefix := opts.RedisPrefix
		if prefix == "" {
			prefix = kv.DefaultRedisPrefix
		}
		return New(kv.NewRedisRepository(rdb, prefix)), nil

	default:
		return nil, fmt.Errorf("%w: %q", common.ErrorUnknownBackend, opts.Backend)
	}
}
