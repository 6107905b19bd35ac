// Package cache stores rendered map artifacts.
//
// Generation is deterministic, so a rendered map is fully identified by its
// inputs and can be cached indefinitely. The server uses a [Cache] to skip
// regenerating maps it has already produced.
//
// Backends:
//   - [MemoryCache]: bounded in-process LRU
//   - [FileCache]: one file per entry under a directory
//   - [RedisCache]: shared cache for several server instances
//   - [NullCache]: caching disabled
//
// Keys are built with [Key], which hashes its parts so any backend can store
// them verbatim.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. A zero ttl means no expiry.
// Get reports a miss with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
