// Package cache stores converted board previews so repeated renders of an
// unchanged board skip the rsvg-convert round trip.
//
// Two implementations are provided: FileCache keeps entries as JSON files
// under a directory, NullCache stores nothing. Keys come from
// ConversionKey, which hashes the SVG source together with the output
// format and scale.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long converted previews stay valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any resources held by the cache.
	Close() error
}
