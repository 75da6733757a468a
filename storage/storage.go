// ABOUTME: Key/value persistence adapter contract and collection keys
// ABOUTME: Fixed string keys map each collection to one serialized value
package storage

import "errors"

// Collection keys. One fixed key per persisted collection, plus the schema
// version marker the migrator reads on startup.
const (
	KeyContacts    = "bc_contacts"
	KeyEvents      = "bc_events"
	KeyProfile     = "bc_my_profile"
	KeySettings    = "bc_settings"
	KeyCompanies   = "bc_companies"
	KeyLists       = "bc_lists"
	KeyDataVersion = "bc_data_version"
)

var (
	// ErrNotFound is returned by Get when a key has never been written.
	ErrNotFound = errors.New("storage: key not found")

	// ErrQuotaExceeded is returned by Set when the configured byte budget
	// would be exceeded. Writes are never retried; the caller keeps its
	// in-memory state and surfaces a warning.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// KV is the synchronous persistence adapter the store and migrator write
// through. Implementations must be safe for concurrent use.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}
