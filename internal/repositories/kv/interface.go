// Package kv implements the durable key-value substrate backing the user
// store: a single sqlite table addressed by string keys holding opaque
// serialized values.
package kv

import (
	"context"
)

// Repository is a durable string-keyed blob store.
//
// Get returns (nil, nil) for an absent key; callers decide what absence
// means for them.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
