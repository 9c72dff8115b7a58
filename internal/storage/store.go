// Package storage provides the durable key-value persistence adapter used by
// the client-side stores to survive reloads. Backends share one contract:
// Get returns domain.ErrNotFound for absent keys, Set overwrites
// unconditionally (last writer wins).
package storage

import "context"

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
