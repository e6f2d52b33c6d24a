package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/validators"
	"github.com/MKhiriev/go-cred-vault/models"
)

// CredentialValidationService is a CredentialService decorator that validates
// inputs before delegating to the wrapped service. Validation failures are
// wrapped in ErrValidation so the HTTP layer can map them to 400 uniformly.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

// NewCredentialValidationService constructs the validation decorator. Call
// Wrap to bind the inner service.
func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

// Wrap implements CredentialServiceWrapper.
func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

// SaveCredential validates the full record before delegating.
func (v *CredentialValidationService) SaveCredential(ctx context.Context, record models.CredentialRecord) error {
	if err := v.validator.Validate(ctx, record); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.SaveCredential(ctx, record)
}

// GetAllCredentials validates the owner id before delegating.
func (v *CredentialValidationService) GetAllCredentials(ctx context.Context, userID int64) ([]models.CredentialRecord, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}

	return v.inner.GetAllCredentials(ctx, userID)
}

// UpdateCredential validates the target id and the update payload before
// delegating.
func (v *CredentialValidationService) UpdateCredential(ctx context.Context, id string, userID int64, update models.CredentialUpdate) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidRecordID)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.UpdateCredential(ctx, id, userID, update)
}

// DeleteCredential validates the target id before delegating.
func (v *CredentialValidationService) DeleteCredential(ctx context.Context, id string, userID int64) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidRecordID)
	}
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}

	return v.inner.DeleteCredential(ctx, id, userID)
}
