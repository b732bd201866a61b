// Package kvstore provides the small persistent string store that backs
// vault metadata and the active vault selection.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrClosed = errors.New("kvstore: store is closed")

// Store is a flat string key/value store. A missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Keys returns every key starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Open returns the store for driver. path is ignored by the memory driver.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "memory":
		return NewMemory(), nil
	case "bolt", "sqlite":
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("kvstore: creating store directory: %w", err)
		}
		if driver == "bolt" {
			return OpenBolt(path)
		}
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("kvstore: unknown driver %q", driver)
	}
}
