package store

import (
	"errors"
	"fmt"
)

var (
	// ErrOpen indicates the store could not be opened within the retry budget.
	ErrOpen = errors.New("store unavailable")

	// ErrSerialize indicates a record could not be encoded.
	ErrSerialize = errors.New("failed to serialize record")

	// ErrDeserialize indicates stored bytes could not be decoded into a record.
	ErrDeserialize = errors.New("failed to deserialize record")

	// ErrIO indicates a read, write or flush of the backing file failed.
	ErrIO = errors.New("store i/o failed")

	// ErrClosed indicates an operation on a closed store.
	ErrClosed = errors.New("store is closed")
)

// OpenError is returned by Open after every attempt has failed.
type OpenError struct {
	// Location is the store directory that was being opened.
	Location string

	// Attempts is the number of open attempts made.
	Attempts int

	// Err is the cause of the last failed attempt.
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("%v: %s: failed after %d attempts: %v", ErrOpen, e.Location, e.Attempts, e.Err)
}

// Unwrap returns the cause of the last failed attempt.
func (e *OpenError) Unwrap() error {
	return e.Err
}

// Is reports ErrOpen as a match so callers can test with errors.Is.
func (e *OpenError) Is(target error) bool {
	return target == ErrOpen
}
