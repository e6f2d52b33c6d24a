package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/internal/store"
	"github.com/MKhiriev/go-cred-vault/models"
)

// credentialService is the server-side implementation of CredentialService.
// It delegates persistence to a CredentialRepository and normalises store
// errors into the service sentinels.
type credentialService struct {
	repository store.CredentialRepository
	logger     *logger.Logger
}

// NewCredentialService constructs a CredentialService backed by the given
// repository.
func NewCredentialService(repository store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		repository: repository,
		logger:     logger,
	}
}

// SaveCredential persists a new record. The record arrives with the owner
// already stamped from the authenticated token by the handler layer.
func (s *credentialService) SaveCredential(ctx context.Context, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Save(ctx, record); err != nil {
		log.Err(err).Str("id", record.ID).Msg("saving credential record failed")
		return fmt.Errorf("saving credential record failed: %w", err)
	}

	return nil
}

// GetAllCredentials returns every record owned by userID, most recently
// created first.
func (s *credentialService) GetAllCredentials(ctx context.Context, userID int64) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	records, err := s.repository.GetAll(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing credential records failed")
		return nil, fmt.Errorf("listing credential records failed: %w", err)
	}

	return records, nil
}

// UpdateCredential applies update to the record identified by id and owned by
// userID. A record that does not exist or belongs to another user yields
// ErrRecordNotFound.
func (s *credentialService) UpdateCredential(ctx context.Context, id string, userID int64, update models.CredentialUpdate) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Update(ctx, id, userID, update); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return ErrRecordNotFound
		}

		log.Err(err).Str("id", id).Int64("user_id", userID).Msg("updating credential record failed")
		return fmt.Errorf("updating credential record failed: %w", err)
	}

	return nil
}

// DeleteCredential removes the record identified by id and owned by userID.
// A record that does not exist or belongs to another user yields
// ErrRecordNotFound.
func (s *credentialService) DeleteCredential(ctx context.Context, id string, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.repository.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, store.ErrCredentialNotFound) {
			return ErrRecordNotFound
		}

		log.Err(err).Str("id", id).Int64("user_id", userID).Msg("deleting credential record failed")
		return fmt.Errorf("deleting credential record failed: %w", err)
	}

	return nil
}
