// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cred-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, and with an empty string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success it stores the
	// returned bearer token via SetToken and returns the token model with the
	// server-assigned user id. Returns [ErrConflict] (wrapped) when the login
	// is already taken.
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, error)

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the token model.
	// Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// SaveRecord sends a new credential record to the server. The record's
	// SecretEnvelope must already be encrypted; the adapter transmits it
	// verbatim.
	SaveRecord(ctx context.Context, record models.CredentialRecord) error

	// GetRecords retrieves every credential record owned by the
	// authenticated user, most recently created first.
	GetRecords(ctx context.Context) ([]models.CredentialRecord, error)

	// UpdateRecord pushes a full-field update for the record identified by
	// id. Returns [ErrNotFound] (wrapped) when the server reports that no
	// owned record matches.
	UpdateRecord(ctx context.Context, id string, update models.CredentialUpdate) error

	// DeleteRecord removes the record identified by id. Returns
	// [ErrNotFound] (wrapped) when the server reports that no owned record
	// matches.
	DeleteRecord(ctx context.Context, id string) error
}
