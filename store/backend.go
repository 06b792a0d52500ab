package store

import "github.com/focusflow/focusflow/internal/apperr"

var (
	// ErrNotFound is returned by a Backend when no value is stored under a
	// key.
	ErrNotFound = &apperr.Error{
		Message: "document not found",
	}

	errStoreBusy = &apperr.Error{
		Message: "the focusflow database is locked by another process, try again",
	}

	errUnknownDriver = &apperr.Error{
		Message: "unknown store driver: %q",
	}
)

// Backend is a key-value medium holding raw documents.
type Backend interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Put creates or overwrites the value stored under key.
	Put(key string, value []byte) error
	// Update atomically replaces the value stored under key with the result
	// of fn, which receives the current value or nil when there is none.
	// Nothing is stored when fn returns an error.
	Update(key string, fn func(value []byte) ([]byte, error)) error
	// Close releases the backend's resources.
	Close() error
}
