// Package store provides the key-value persistence adapters behind the
// history and learned-product tables. Adapters only move bytes; the
// fail-open policy for corrupt or unwritable data lives in the stores
// that own the tables, so it is implemented once per table, not per call.
package store

import "errors"

// ErrNotFound is returned by Load when a key has never been saved.
// Callers treat it as "start with an empty table".
var ErrNotFound = errors.New("store: key not found")

// KV is the persistence surface the engine's stores write through.
// Values are whole-table JSON blobs under fixed keys; every save replaces
// the blob wholesale.
type KV interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
