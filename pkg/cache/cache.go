// Package cache provides caching for rendered network artifacts.
//
// Rendering a network map through Graphviz is the only expensive,
// repeatable step in the application, so it is the only thing cached.
// Routing results are never cached: track blocks must take effect on the
// very next query.
//
// Cache keys are derived from a fingerprint of the network itself, so a
// changed network (new station, blocked track) naturally misses.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return is false on miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// MapKeyOpts are the render options that distinguish one map artifact
// from another for the same network.
type MapKeyOpts struct {
	Format string // "svg", "png", "dot"
	Layout string // graphviz layout engine, e.g. "dot", "neato"
}

// Keyer generates cache keys for network artifacts.
type Keyer interface {
	// MapKey generates a key for a rendered network map. networkHash is
	// a fingerprint of the network's stations and tracks.
	MapKey(networkHash string, opts MapKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// MapKey generates a key for a rendered network map.
func (k *DefaultKeyer) MapKey(networkHash string, opts MapKeyOpts) string {
	return hashKey("map", networkHash, opts.Format, opts.Layout)
}
