package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldRecordID targets the client-generated unique identifier of a record.
	FieldRecordID = "id"

	// FieldUserID targets the owner identifier of a record.
	FieldUserID = "user_id"

	// FieldTitle targets the display label of a record.
	FieldTitle = "title"

	// FieldUsername targets the login identifier of a record.
	FieldUsername = "username"

	// FieldSecret targets the encrypted secret envelope of a record.
	FieldSecret = "secret"
)

// CredentialValidator implements the Validator interface for the credential
// domain models: CredentialRecord and CredentialUpdate.
type CredentialValidator struct{}

// NewCredentialValidator constructs a [CredentialValidator] ready for use.
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{}
}

// Validate implements [Validator]. It dispatches on the dynamic type of value
// and applies either full validation or, when field names are given, only the
// checks for those fields.
//
// Supported types: [models.CredentialRecord], [models.CredentialUpdate].
// Any other type yields [ErrUnsupportedType].
func (v *CredentialValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch typed := value.(type) {
	case models.CredentialRecord:
		return v.validateRecord(typed, fields...)
	case models.CredentialUpdate:
		return v.validateUpdate(typed)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

// validateRecord checks a full credential record. With no field scoping every
// rule is applied; otherwise only the named fields are checked.
func (v *CredentialValidator) validateRecord(record models.CredentialRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldUserID, FieldTitle, FieldUsername, FieldSecret}
	}

	for _, field := range fields {
		switch field {
		case FieldRecordID:
			if record.ID == "" {
				return ErrInvalidRecordID
			}
		case FieldUserID:
			if record.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if record.Title == "" {
				return ErrEmptyTitle
			}
		case FieldUsername:
			if record.Username == "" {
				return ErrEmptyUsername
			}
		case FieldSecret:
			if record.SecretEnvelope == "" {
				return ErrEmptySecret
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

// validateUpdate checks a partial update. At least one field must be set, and
// a set field must not be emptied: clearing title, username, or the secret
// envelope would leave the record unusable.
func (v *CredentialValidator) validateUpdate(update models.CredentialUpdate) error {
	if update.Title == nil && update.Username == nil && update.SecretEnvelope == nil &&
		update.URL == nil && update.Notes == nil {
		return ErrNoFieldsToUpdate
	}

	if update.Title != nil && *update.Title == "" {
		return ErrEmptyTitle
	}
	if update.Username != nil && *update.Username == "" {
		return ErrEmptyUsername
	}
	if update.SecretEnvelope != nil && *update.SecretEnvelope == "" {
		return ErrEmptySecret
	}

	return nil
}
