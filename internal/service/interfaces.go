package service

import (
	"context"

	"github.com/MKhiriev/go-cred-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService is the server-side identity provider: account registration,
// credential verification, and JWT lifecycle.
type AuthService interface {
	// RegisterUser creates a new account. The AuthHash field of the input
	// carries the plaintext password; it is replaced by its HMAC before any
	// store call.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the supplied credentials and returns the stored user
	// record. The AuthHash field of the input carries the plaintext
	// password.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string (signature, issuer, expiry) and
	// returns the decoded token model.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService is the server-side record store facade. Every operation
// is scoped by the userID stamped from the authenticated token, never from
// request data.
type CredentialService interface {
	SaveCredential(ctx context.Context, record models.CredentialRecord) error
	GetAllCredentials(ctx context.Context, userID int64) ([]models.CredentialRecord, error)
	UpdateCredential(ctx context.Context, id string, userID int64, update models.CredentialUpdate) error
	DeleteCredential(ctx context.Context, id string, userID int64) error
}

// CredentialServiceWrapper defines middleware composition for
// CredentialService. Implementations wrap an existing CredentialService to
// add behavior such as validation or logging.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}
