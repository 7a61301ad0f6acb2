// Package storage provides the key-value blob store the session and booking
// repositories persist into.  Each key holds one whole JSON value which is
// always written and read in full; there is no partial or incremental
// persistence and no schema version field.  A format change therefore
// requires a manual migration or a reset.
package storage

import "errors"

// Fixed blob keys.  These match the keys the repositories have always used,
// so blobs written by one backend remain readable by another.
const (
	KeySession  = "railway_user"
	KeyBookings = "railway_bookings"
)

// ErrNoBlob is returned by Get when no value has ever been stored under the
// key.  Callers use it to distinguish "never persisted" (seed defaults) from
// a read failure.
var ErrNoBlob = errors.New("storage: no blob stored under key")

// BlobStore is the persistence contract for whole-value JSON blobs.  Set
// replaces the entire value under the key, Get returns the last written
// value, and Delete removes the key so a later Get reports ErrNoBlob.
type BlobStore interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
