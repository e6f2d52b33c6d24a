package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrRecordNotFound:          http.StatusNotFound,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusUnauthorized,
	store.ErrCredentialNotFound:  http.StatusNotFound,
	store.ErrCredentialNotSaved:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:    http.StatusInternalServerError,
	store.ErrExecutingQuery:      http.StatusInternalServerError,
	store.ErrScanningRow:         http.StatusInternalServerError,
	store.ErrScanningRows:        http.StatusInternalServerError,
}

// statusFromError translates a service or store error into an HTTP status.
// Transient database failures take precedence: a retryable error becomes 503
// no matter which sentinel it is wrapped in, so clients know to try again.
func (h *Handler) statusFromError(err error) int {
	if h.classifier != nil && h.classifier.Classify(err) == store.Retryable {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	return http.StatusInternalServerError
}
