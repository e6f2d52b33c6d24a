package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cred-vault/internal/adapter"
	"github.com/MKhiriev/go-cred-vault/internal/crypto"
	"github.com/MKhiriev/go-cred-vault/internal/utils"
	"github.com/MKhiriev/go-cred-vault/internal/validators"
	"github.com/MKhiriev/go-cred-vault/models"
)

// vaultService is the concrete implementation of VaultService.
type vaultService struct {
	adapter   adapter.ServerAdapter
	cipher    crypto.CipherService
	generator crypto.SecretGenerator
	ids       *utils.UUIDGenerator
}

// NewVaultService constructs a VaultService wired to the given transport
// adapter and cipher.
func NewVaultService(serverAdapter adapter.ServerAdapter, cipher crypto.CipherService, generator crypto.SecretGenerator) VaultService {
	return &vaultService{
		adapter:   serverAdapter,
		cipher:    cipher,
		generator: generator,
		ids:       utils.NewUUIDGenerator(),
	}
}

// Create implements VaultService.
func (v *vaultService) Create(ctx context.Context, fields models.CredentialFields, masterKey string, userID int64) (models.CredentialRecord, error) {
	if err := validateFields(fields); err != nil {
		return models.CredentialRecord{}, err
	}

	envelope, err := v.cipher.Encrypt(fields.Secret, masterKey)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("encrypt secret for create: %w", err)
	}

	now := time.Now().UTC()
	record := models.CredentialRecord{
		ID:             v.ids.Generate(),
		UserID:         userID,
		Title:          fields.Title,
		Username:       fields.Username,
		SecretEnvelope: envelope,
		URL:            fields.URL,
		Notes:          fields.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = mapAdapterError(v.adapter.SaveRecord(ctx, record)); err != nil {
		// No partial state: the record never reached the store, and both
		// plaintext and ciphertext go out of scope here.
		return models.CredentialRecord{}, fmt.Errorf("save created record: %w", err)
	}

	return record, nil
}

// Update implements VaultService. The secret is re-encrypted unconditionally,
// even when the user left it unchanged, so every update gets a fresh salt and
// nonce.
func (v *vaultService) Update(ctx context.Context, id string, fields models.CredentialFields, masterKey string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidRecordID)
	}
	if err := validateFields(fields); err != nil {
		return err
	}

	envelope, err := v.cipher.Encrypt(fields.Secret, masterKey)
	if err != nil {
		return fmt.Errorf("encrypt secret for update: %w", err)
	}

	update := models.CredentialUpdate{
		Title:          &fields.Title,
		Username:       &fields.Username,
		SecretEnvelope: &envelope,
		URL:            &fields.URL,
		Notes:          &fields.Notes,
	}

	if err = mapAdapterError(v.adapter.UpdateRecord(ctx, id, update)); err != nil {
		return fmt.Errorf("update record %s: %w", id, err)
	}

	return nil
}

// Delete implements VaultService.
func (v *vaultService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidRecordID)
	}

	if err := mapAdapterError(v.adapter.DeleteRecord(ctx, id)); err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}

	return nil
}

// List implements VaultService.
func (v *vaultService) List(ctx context.Context) ([]models.CredentialRecord, error) {
	records, err := v.adapter.GetRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", mapAdapterError(err))
	}

	return records, nil
}

// Reveal implements VaultService. The returned plaintext exists only in
// client memory; callers must not persist or log it.
func (v *vaultService) Reveal(record models.CredentialRecord, masterKey string) (string, error) {
	plaintext, err := v.cipher.Decrypt(record.SecretEnvelope, masterKey)
	if err != nil {
		return "", fmt.Errorf("reveal record %s: %w", record.ID, err)
	}

	return plaintext, nil
}

// GenerateSecret implements VaultService.
func (v *vaultService) GenerateSecret(length int) string {
	return v.generator.GenerateSecret(length)
}

// validateFields enforces the create/update field rules: title and username
// are required, everything else is optional.
func validateFields(fields models.CredentialFields) error {
	if fields.Title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyTitle)
	}
	if fields.Username == "" {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrEmptyUsername)
	}

	return nil
}
