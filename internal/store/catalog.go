// Package store is the data-access layer over the embedded catalog
// database. The startup projection rebuild is the only writer; every
// request-time path is read-only against the flat creature_core projection.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

// maxConns bounds the connection pool; contention backpressures requests.
const maxConns = 5

// Catalog owns the database handle and the process-wide caches.
type Catalog struct {
	db  *sql.DB
	log *zap.Logger

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]any
}

// Open opens the catalog database and configures the pool.
func Open(path string, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		log.Debug("failed to set sqlite busy_timeout", zap.Error(err))
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		log.Debug("failed to set sqlite journal_mode=WAL", zap.Error(err))
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return &Catalog{db: db, log: log, cache: make(map[string]any)}, nil
}

// DB exposes the underlying handle for tests.
func (c *Catalog) DB() *sql.DB { return c.db }

// Ping reports database liveness for the health endpoint.
func (c *Catalog) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close releases the pool.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// cached populates a process-wide cache entry exactly once. Concurrent
// populators are serialized through singleflight; late arrivals read the
// stored value. Entries live for the process lifetime.
func cached[T any](c *Catalog, key string, fetch func() (T, error)) (T, error) {
	c.mu.RLock()
	if v, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return v.(T), nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		if v, ok := c.cache[key]; ok {
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		val, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = val
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
