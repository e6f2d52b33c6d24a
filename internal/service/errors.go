package service

import "errors"

// Sentinel errors shared by the server-side and client-side services.
// Callers match them with [errors.Is].
var (
	// ErrInvalidDataProvided is returned when a request carries empty or
	// malformed identity fields (login, password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the supplied password does not match
	// the stored auth hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenCreationFailed is returned when a JWT cannot be generated.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is returned for any token validation
	// failure: expired, wrong issuer, bad signature, or malformed string.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// Vault lifecycle sentinel errors.
var (
	// ErrValidation is returned when record fields fail validation (empty
	// title or username, missing secret). The cause is wrapped.
	ErrValidation = errors.New("validation failed")

	// ErrRecordNotFound is returned when an operation targets a record that
	// does not exist or is owned by another user; the two cases are
	// deliberately indistinguishable.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStoreUnavailable is returned when the record store cannot be
	// reached or fails transiently. The lifecycle layer performs no internal
	// retries; callers decide whether to try again.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrUnauthorized is returned when the session token is missing,
	// expired, or rejected by the server.
	ErrUnauthorized = errors.New("unauthorized")
)
