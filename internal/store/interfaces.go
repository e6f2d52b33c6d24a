package store

import (
	"context"

	"github.com/MKhiriev/go-cred-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles user account creation and lookup for the identity
// provider.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated. A duplicate login yields
	// [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose login matches the one in the
	// given model, or [ErrNoUserWasFound] when it does not exist.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// CredentialRepository executes credential record CRUD against the
// "credentials" table. Every operation is scoped by the owning user id;
// a record belonging to another user is indistinguishable from an absent one.
type CredentialRepository interface {
	// Save inserts a new credential record with its client-assigned id.
	Save(ctx context.Context, record models.CredentialRecord) error

	// GetAll returns every record owned by userID, most recently created
	// first. An empty result is a valid outcome, not an error.
	GetAll(ctx context.Context, userID int64) ([]models.CredentialRecord, error)

	// Update applies the non-nil fields of update to the record identified
	// by id and owned by userID, bumping updated_at. Zero affected rows
	// yield [ErrCredentialNotFound].
	Update(ctx context.Context, id string, userID int64, update models.CredentialUpdate) error

	// Delete removes the record identified by id and owned by userID.
	// Zero affected rows yield [ErrCredentialNotFound].
	Delete(ctx context.Context, id string, userID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. The HTTP layer uses the classification to choose between 503
// (retryable, transient) and 500 (non-retryable).
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
