package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/utils"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/api/vault", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "non-Bearer scheme still parses second part",
			header:    "Basic dXNlcjpwYXNz",
			wantToken: "dXNlcjpwYXNz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth middleware
// ─────────────────────────────────────────────

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	nextCalled := false
	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, nextCalled)
}

func TestAuth_MalformedHeader(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	rr := executeAuth(h, "Bearer", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	h := newTestHandler(t, auth, nil)

	rr := executeAuth(h, "Bearer expired-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ValidTokenInjectsUserID(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newTestHandler(t, auth, nil)

	var gotUserID int64
	var gotOK bool
	rr := executeAuth(h, "Bearer good-token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	require.True(t, gotOK)
	assert.Equal(t, int64(42), gotUserID)
}
