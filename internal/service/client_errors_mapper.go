package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/adapter"
)

// mapAdapterError normalises transport errors from the adapter into the
// service sentinels so the TUI never has to know about status codes.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return ErrRecordNotFound
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		// Connection failures, 5xx responses, and anything unrecognised:
		// the store is unreachable from the client's point of view.
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
