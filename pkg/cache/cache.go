// Package cache stores computed results between runs.
//
// Solving an arrival sequence is cheap, but a grading run repeats the same
// sequences for every submission, and the HTTP API sees the same inputs
// over and over. The [Cache] interface lets the pipeline keep optimal
// solutions keyed by a hash of the arrival sequence.
//
// Implementations:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for API instances
//   - [NullCache]: disables caching
//
// Keys come from a [Keyer], so that several courses or deployments can
// share one backend under different prefixes:
//
//	keyer := cache.NewPrefixKeyer("ws2024:")
//	key := keyer.SolutionKey([]int{3, 1, 2})
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long solutions stay cached when no TTL is configured.
// Solutions never change, so this only bounds storage growth.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. The boolean is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// SolutionKey returns the key for the optimal solution of arrivals.
	SolutionKey(arrivals []int) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SolutionKey hashes the arrival sequence.
func (DefaultKeyer) SolutionKey(arrivals []int) string {
	return solutionKey(arrivals)
}

// PrefixKeyer prepends a fixed prefix to every key.
type PrefixKeyer struct {
	inner  Keyer
	prefix string
}

// NewPrefixKeyer returns a Keyer that prefixes keys from a DefaultKeyer.
func NewPrefixKeyer(prefix string) Keyer {
	return NewScopedKeyer(nil, prefix)
}

// NewScopedKeyer wraps inner with a prefix. If inner is nil a DefaultKeyer
// is used.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &PrefixKeyer{inner: inner, prefix: prefix}
}

// SolutionKey returns the prefixed key.
func (k *PrefixKeyer) SolutionKey(arrivals []int) string {
	return k.prefix + k.inner.SolutionKey(arrivals)
}
