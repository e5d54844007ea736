package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the durable key/value store backing session, cart and
// location state. Consumers define this interface, not the SQLite
// implementation. Each key holds one independently serialized blob and
// every Set replaces the blob wholesale, so a reader never observes a
// partially applied mutation.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
