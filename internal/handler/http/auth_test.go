// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// registerBody serialises a models.RegisterRequest to a JSON string.
func registerBody(t *testing.T, req models.RegisterRequest) string {
	t.Helper()
	b, err := json.Marshal(req)
	require.NoError(t, err)
	return string(b)
}

func executeRegister(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.register(rr, req)
	return rr
}

func executeLogin(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.login(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Login)
			assert.Equal(t, "plaintext-password", user.AuthHash)
			user.UserID = 1
			return user, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{SignedString: "signed-jwt", UserID: user.UserID}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeRegister(h, registerBody(t, models.RegisterRequest{
		Login:    "alice",
		Password: "plaintext-password",
		Name:     "Alice",
	}))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-jwt", rr.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rr := executeRegister(h, "{not json")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeRegister(h, registerBody(t, models.RegisterRequest{Login: "alice"}))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_DuplicateLogin(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeRegister(h, registerBody(t, models.RegisterRequest{Login: "alice", Password: "pw"}))

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return user, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			return models.Token{}, errors.New("sign key unavailable")
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeRegister(h, registerBody(t, models.RegisterRequest{Login: "alice", Password: "pw"}))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Login: user.Login}, nil
		},
		createTokenFn: func(ctx context.Context, user models.User) (models.Token, error) {
			assert.Equal(t, int64(7), user.UserID)
			return models.Token{SignedString: "signed-jwt", UserID: 7}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeLogin(h, `{"login":"alice","password":"secret"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed-jwt", rr.Header().Get("Authorization"))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rr := executeLogin(h, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLogin_WrongCredentials(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "wrong password", err: service.ErrWrongPassword},
		{name: "no user", err: store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(ctx context.Context, user models.User) (models.User, error) {
					return models.User{}, tt.err
				},
			}
			h := newTestHandler(t, auth, nil)

			rr := executeLogin(h, `{"login":"alice","password":"bad"}`)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, errors.New("connection refused")
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeLogin(h, `{"login":"alice","password":"secret"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
