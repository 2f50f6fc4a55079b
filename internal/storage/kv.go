// Package storage provides the key-value substrate the ledger persists to.
// Values are opaque byte snapshots; the ledger owns their encoding.
package storage

import "context"

// KV is a minimal key-value blob store.
type KV interface {
	// Get returns the value for key. The second result is false when the
	// key is absent (absence is not an error).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}
