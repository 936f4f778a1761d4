// Package storage abstracts the key/value backend holding both the raw
// dashboard document and the runtime-persisted configuration. Backends are
// namespace-scoped: two instances with different namespaces never see each
// other's keys.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

type Backend interface {
	// Exists reports whether key holds a value.
	Exists(ctx context.Context, key string) (bool, error)
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Keys lists all keys in this backend's namespace.
	Keys(ctx context.Context) ([]string, error)
}
