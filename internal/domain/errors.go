package domain

import "errors"

// ErrValidation marks input that fails a domain rule. Callers surface
// these to the user without touching the store.
var ErrValidation = errors.New("validation failed")
