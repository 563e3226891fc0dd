package api

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// RejectedError carries the server's human-readable rejection reason for a
// request that was understood but refused (4xx). The wrapped sentinel makes
// the class matchable with errors.Is.
type RejectedError struct {
	Kind    error
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

func (e *RejectedError) Unwrap() error { return e.Kind }
