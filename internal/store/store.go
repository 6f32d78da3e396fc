package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/inovacc/fitbook/internal/model"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the backend.
	Close() error
}

// BackendError wraps a failure from a specific backend operation.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s store: %s: %v", e.Backend, e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Open creates the backend selected by cfg. File backends default to a
// database inside dir.
func Open(ctx context.Context, cfg model.StoreConfig, dir string) (KV, error) {
	switch cfg.Backend {
	case model.BackendBolt, "":
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dir, "fitbook.bolt")
		}

		return NewBolt(path)

	case model.BackendSQLite:
		path := cfg.Path
		if path == "" {
			path = filepath.Join(dir, "fitbook.db")
		}

		return NewSQLite(ctx, path)

	case model.BackendRedis:
		return NewRedis(ctx, cfg.RedisURL)

	case model.BackendMemory:
		return NewMemory(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
