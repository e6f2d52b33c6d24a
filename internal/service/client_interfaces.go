package service

import (
	"context"

	"github.com/MKhiriev/go-cred-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService handles account registration and login on the client
// side, keeping the session token inside the transport adapter.
type ClientAuthService interface {
	// Register creates a new account and stores the session token.
	Register(ctx context.Context, login, password, name string) (models.Token, error)

	// Login authenticates and stores the session token.
	Login(ctx context.Context, login, password string) (models.Token, error)

	// Logout discards the session token.
	Logout()
}

// VaultService is the client-side record lifecycle: it encrypts before any
// persistence call, decrypts only transiently for display, and never lets
// the master key or a plaintext secret leave the process.
type VaultService interface {
	// Create validates fields, encrypts the secret with masterKey, assembles
	// a record with a fresh id and the owner stamped from the authenticated
	// session, and persists it. On any failure after encryption both the
	// plaintext and the ciphertext are discarded; nothing is retried.
	Create(ctx context.Context, fields models.CredentialFields, masterKey string, userID int64) (models.CredentialRecord, error)

	// Update re-encrypts the secret unconditionally and pushes a full-field
	// update for the record identified by id. A record that no longer exists
	// (or is owned by someone else) yields ErrRecordNotFound.
	Update(ctx context.Context, id string, fields models.CredentialFields, masterKey string) error

	// Delete removes the record identified by id. Same not-found semantics
	// as Update.
	Delete(ctx context.Context, id string) error

	// List returns all records of the session user, most recently created
	// first. Secret envelopes are left opaque.
	List(ctx context.Context) ([]models.CredentialRecord, error)

	// Reveal decrypts the record's secret with masterKey for transient
	// display. A wrong key or corrupted envelope yields
	// crypto.ErrDecryptionFailed; the caller renders a placeholder instead
	// of crashing.
	Reveal(record models.CredentialRecord, masterKey string) (string, error)

	// GenerateSecret produces a random replacement secret of the given
	// length for the record form.
	GenerateSecret(length int) string
}
