package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores the
// authenticated user's id in the request context under [utils.UserIDCtxKey]
// before delegating to the next handler.
//
// Every failure mode answers 401: a missing or malformed header, an empty
// token, an expired token, a bad signature, or a foreign issuer. The response
// never distinguishes between them beyond the error text.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's id in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" header value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] when the header has fewer than
// two space-separated parts, and [ErrEmptyToken] when the token part exists
// but is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
