package models

import "time"

// CredentialRecord represents a single stored service credential.
// It is the primary persistence model of the vault.
// The secret value is stored encrypted and opaque to the database.
type CredentialRecord struct {
	// ID is the unique identifier of the record. It is assigned by the
	// owning client at creation time (UUID) and stable thereafter.
	ID string `json:"id"`

	// UserID is the owner of this credential record. Every store operation
	// is scoped by this value; a record is never visible to another user.
	UserID int64 `json:"user_id"`

	// Title is the display label of the credential (e.g. "Gmail").
	// Required, non-empty.
	Title string `json:"title"`

	// Username is the login identifier for the service. Required, non-empty.
	Username string `json:"username"`

	// SecretEnvelope holds the encrypted secret value.
	// It is never set from an unencrypted value; the database and the
	// server treat it as an opaque string.
	SecretEnvelope CipherEnvelope `json:"secret"`

	// URL is an optional link to the service.
	URL string `json:"url,omitempty"`

	// Notes contains optional free-form text.
	Notes string `json:"notes,omitempty"`

	// CreatedAt is the timestamp when the record was created. Set once.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// CredentialFields carries the user-editable fields of a credential as they
// arrive from a form: the secret value is still plaintext here and exists
// only transiently in client memory until the lifecycle layer encrypts it.
type CredentialFields struct {
	Title    string
	Username string
	Secret   string
	URL      string
	Notes    string
}

// CredentialUpdate describes a full-field update of an existing record.
// Nil pointers mean "leave the column unchanged"; the lifecycle layer always
// sets all of them (full-field update), the store supports partial sets.
type CredentialUpdate struct {
	Title          *string         `json:"title,omitempty"`
	Username       *string         `json:"username,omitempty"`
	SecretEnvelope *CipherEnvelope `json:"secret,omitempty"`
	URL            *string         `json:"url,omitempty"`
	Notes          *string         `json:"notes,omitempty"`
}

// TableName returns the name of the database table
// associated with the CredentialRecord model.
func (c *CredentialRecord) TableName() string {
	return "credentials"
}
