package testutil

import (
	"context"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/storage"
)

// FailPutKV wraps a KV and injects an error on Put for a specific key.
// This enables tests that assert a failed persist leaves the in-memory
// collections untouched. Reads pass through normally.
type FailPutKV struct {
	storage.KV
	FailKey string
	Err     error
}

func (f *FailPutKV) Put(ctx context.Context, key string, value []byte) error {
	if key == f.FailKey {
		return f.Err
	}
	return f.KV.Put(ctx, key, value)
}

// FailGetKV wraps a KV and injects an error on Get for a specific key.
type FailGetKV struct {
	storage.KV
	FailKey string
	Err     error
}

func (f *FailGetKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == f.FailKey {
		return nil, false, f.Err
	}
	return f.KV.Get(ctx, key)
}
