package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnavailable marks store-level failures (driver or I/O errors) so
// callers can distinguish them from domain errors and tell the user the
// backend, not their input, is at fault.
var ErrUnavailable = errors.New("store unavailable")

// storeErr wraps a driver error so it matches ErrUnavailable while
// keeping the underlying cause in the chain.
func storeErr(action string, err error) error {
	return fmt.Errorf("%s: %w", action, errors.Join(ErrUnavailable, err))
}
