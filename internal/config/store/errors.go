package store

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey indicates a key with no segments.
	ErrEmptyKey = errors.New("empty settings key")

	// ErrNoFile indicates a file operation on a store with no backing file.
	ErrNoFile = errors.New("store has no backing file")
)

// PathError reports a backend failure at a specific key.
type PathError struct {
	Key string
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("settings key %q: %v", e.Key, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
