package adapter

import "errors"

// Transport-agnostic sentinel errors. mapHTTPError wraps one of these around
// the response body so callers can match with [errors.Is] without knowing
// status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("record not found")
	ErrConflict            = errors.New("conflict")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
)
