// Package cache provides the persisted key-value store backing the session
// cache. Two backends exist: an encrypted file for single-user installs and
// Redis for shared kiosk deployments. The session store is the only writer.
package cache

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no value in the cache.
var ErrNotFound = errors.New("cache: key not found")

// Client is the contract the session store depends on. Implementations
// must treat writes as whole-value replacements.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
