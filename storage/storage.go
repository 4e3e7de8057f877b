// Package storage provides the key-value persistence primitive the stores
// mirror their state through. Each key holds a single JSON-encoded blob;
// there is no schema versioning and no partial update.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
