// Package kv provides the client-side persistent key-value store that holds
// every piece of Aroma state (credentials, session, cart, messages, visits,
// theme).
//
// # Backends
//
//   - SQLiteRepository — default; a single "kv" table in a local database file
//     created by the goose migrations in internal/client/migrations.
//   - MemoryRepository — map guarded by a mutex, for tests and throwaway sessions.
//   - RedisRepository  — keys stored under a prefix in a Redis instance.
//
// All backends implement Repository. Update gives an atomic read-modify-write
// of a single key: a transaction for SQLite, a mutex for memory, and
// WATCH/MULTI with a bounded number of retries for Redis.
//
// Typical Usage
//
//	repo := kv.NewSQLiteRepository(db)
//	_ = repo.Set(ctx, "theme", []byte("dark"))
//	v, _ := repo.Get(ctx, "theme")
//	_ = repo.Update(ctx, "cart", func(cur []byte) ([]byte, error) { ... })
package kv
