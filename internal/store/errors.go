package store

import (
	"errors"
)

// FallbackError reports that a remote mutation failed but the change was
// applied to the local mirror instead. It is a distinguishable outcome,
// not a hard failure: the UI shows the attempted change and warns that
// synchronization did not occur.
type FallbackError struct {
	Message string
	Err     error // the original cause
}

// Error returns the user-facing message
func (e *FallbackError) Error() string {
	return e.Message
}

// Unwrap returns the original cause
func (e *FallbackError) Unwrap() error {
	return e.Err
}

// IsFallback reports whether err signals a local fallback mutation
func IsFallback(err error) bool {
	var fb *FallbackError
	return errors.As(err, &fb)
}
