// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: service.ErrValidation, want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("%w: empty title", service.ErrValidation), want: http.StatusBadRequest},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "wrong password", err: service.ErrWrongPassword, want: http.StatusUnauthorized},
		{name: "expired token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "record not found", err: service.ErrRecordNotFound, want: http.StatusNotFound},
		{name: "store record not found", err: store.ErrCredentialNotFound, want: http.StatusNotFound},
		{name: "duplicate login", err: store.ErrLoginAlreadyExists, want: http.StatusConflict},
		{name: "no user", err: store.ErrNoUserWasFound, want: http.StatusUnauthorized},
		{name: "query build failure", err: store.ErrBuildingSQLQuery, want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "nil classifier still maps", err: service.ErrRecordNotFound, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_RetryableWins(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	pgErr := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}
	err := fmt.Errorf("%w: %w", store.ErrExecutingQuery, pgErr)

	// Without the classifier this would map to 500 via ErrExecutingQuery.
	assert.Equal(t, http.StatusServiceUnavailable, h.statusFromError(err))
}

func TestStatusFromError_NonRetryablePgError(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	pgErr := &pgconn.PgError{Code: pgerrcode.SyntaxError}
	err := fmt.Errorf("%w: %w", store.ErrExecutingQuery, pgErr)

	assert.Equal(t, http.StatusInternalServerError, h.statusFromError(err))
}
