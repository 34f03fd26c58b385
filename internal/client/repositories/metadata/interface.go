// Package metadata is the client's local key/value store. It holds the
// sealed session token and any other small pieces of persisted state.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
