package repository

import (
	"errors"
	"time"
)

// Shared per-call deadlines; every collection call carries its own timeout
// the same way regardless of the caller's context.
const (
	readTimeout  = 3 * time.Second
	writeTimeout = 5 * time.Second
	queryTimeout = 10 * time.Second
)

// ErrNotFound is returned for any lookup that matches no document.
var ErrNotFound = errors.New("document not found")

// ValidationError wraps a schema constraint violation detected before a
// write reaches the cluster.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a constraint violation as opposed to
// a store failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
