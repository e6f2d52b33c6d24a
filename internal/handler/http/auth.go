package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-cred-vault/internal/app"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/service"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/MKhiriev/go-cred-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	// AuthHash carries the plaintext password here; the service replaces it
	// with its HMAC before any store call.
	user := models.User{Login: req.Login, AuthHash: req.Password, Name: req.Name}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Msg("login already exists")
			http.Error(w, app.MsgLoginAlreadyExists, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			status := h.statusFromError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, models.User{Login: req.Login, AuthHash: req.Password})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			status := h.statusFromError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
