// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cred-vault/internal/app"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/utils"
	"github.com/MKhiriev/go-cred-vault/models"
)

// saveRecord handles POST /api/vault. The owning user id is always taken
// from the authenticated token, never from the request body.
func (h *Handler) saveRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.saveRecord").Msg(app.MsgNoUserIDProvided)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var record models.CredentialRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.saveRecord").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	record.UserID = userID

	if err := h.services.CredentialService.SaveCredential(r.Context(), record); err != nil {
		log.Err(err).Str("func", "*Handler.saveRecord").Msg("error saving credential record")
		status := h.statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// listRecords handles GET /api/vault. Records come back most recently
// created first; an empty vault yields an empty JSON array.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.listRecords").Msg(app.MsgNoUserIDProvided)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records, err := h.services.CredentialService.GetAllCredentials(r.Context(), userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing credential records")
		status := h.statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if records == nil {
		records = []models.CredentialRecord{}
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error writing response")
	}
}

// updateRecord handles PUT /api/vault/{id}. A record owned by another user
// is reported as 404, exactly like a nonexistent one.
func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.updateRecord").Msg(app.MsgNoUserIDProvided)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	var update models.CredentialUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.services.CredentialService.UpdateCredential(r.Context(), id, userID, update); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("id", id).Msg("error updating credential record")
		status := h.statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err := utils.WriteJSON(w, models.AffectedResponse{Affected: 1}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("error writing response")
	}
}

// deleteRecord handles DELETE /api/vault/{id}. Same not-found semantics as
// updateRecord.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.deleteRecord").Msg(app.MsgNoUserIDProvided)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.services.CredentialService.DeleteCredential(r.Context(), id, userID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("id", id).Msg("error deleting credential record")
		status := h.statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	if _, err := utils.WriteJSON(w, models.AffectedResponse{Affected: 1}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Msg("error writing response")
	}
}
