package api

import (
	"errors"
	"net/http"
)

// Kind classifies a normalized client error
type Kind int

const (
	// KindBusiness means the backend returned a non-success business code
	// inside a 2xx transport response
	KindBusiness Kind = iota

	// KindTransport means the backend answered with a non-2xx HTTP status
	KindTransport

	// KindNetwork means no response was received at all
	KindNetwork
)

// String returns the string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindBusiness:
		return "business"
	case KindTransport:
		return "transport"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// MsgNetworkUnreachable is the fixed message used for connection-level failures
const MsgNetworkUnreachable = "network unreachable, please check your connection"

// Error is the normalized failure shape every call returns
type Error struct {
	Kind       Kind
	Code       int    // business code from the envelope, 0 when absent
	HTTPStatus int    // transport status code, 0 for network failures
	Message    string // backend message when present, otherwise a fixed one
	Err        error  // underlying cause, if any
}

// Error returns the user-facing message
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a 401 transport failure or a
// business code 401
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.HTTPStatus == http.StatusUnauthorized || apiErr.Code == http.StatusUnauthorized
}

// IsNetwork reports whether err is a connection-level failure
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// IsBusiness reports whether err carries a backend business code
func IsBusiness(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindBusiness
}
