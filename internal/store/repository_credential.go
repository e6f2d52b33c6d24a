package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/models"
)

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. It executes all credential CRUD operations
// directly against the "credentials" table using the embedded [*DB]
// connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, record id, affected rows).
type credentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

// Save inserts a new credential record with its client-assigned id.
//
// The envelope in record.SecretEnvelope is stored verbatim; the database
// never sees plaintext. Zero affected rows after a successful execution are
// reported as [ErrCredentialNotSaved].
func (r *credentialRepository) Save(ctx context.Context, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, saveCredential,
		record.ID,
		record.UserID,
		record.Title,
		record.Username,
		record.SecretEnvelope,
		record.URL,
		record.Notes,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Save").
			Str("id", record.ID).
			Int64("user_id", record.UserID).
			Msg("failed to insert credential record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Save").
			Str("id", record.ID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "credentialRepository.Save").
			Str("id", record.ID).
			Msg("insert affected zero rows")
		return ErrCredentialNotSaved
	}

	log.Debug().
		Str("func", "credentialRepository.Save").
		Str("id", record.ID).
		Int64("user_id", record.UserID).
		Msg("credential record saved")

	return nil
}

// GetAll retrieves every credential record owned by the given user, most
// recently created first.
//
// Returns an empty slice when no records are found.
func (r *credentialRepository) GetAll(ctx context.Context, userID int64) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsQuery(ctx, userID)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.GetAll").
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.GetAll").
			Int64("user_id", userID).
			Msg("failed to execute query for getting user credential records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CredentialRecord, 0, 50)

	for rows.Next() {
		var record models.CredentialRecord

		scanErr := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Title,
			&record.Username,
			&record.SecretEnvelope,
			&record.URL,
			&record.Notes,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.GetAll").
				Int64("user_id", userID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "credentialRepository.GetAll").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Update applies the non-nil fields of update to the record identified by id
// and owned by userID.
//
// The UPDATE is built dynamically via [buildUpdateCredentialQuery] and always
// refreshes updated_at. Zero affected rows mean the record does not exist or
// belongs to another user; both cases are reported as [ErrCredentialNotFound].
func (r *credentialRepository) Update(ctx context.Context, id string, userID int64, update models.CredentialUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialQuery(ctx, id, userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Update").
			Str("id", id).
			Msg("failed to build update query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Update").
			Str("id", id).
			Int64("user_id", userID).
			Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Update").
			Str("id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "credentialRepository.Update").
			Str("id", id).
			Int64("user_id", userID).
			Msg("record not found")
		return ErrCredentialNotFound
	}

	log.Info().
		Str("func", "credentialRepository.Update").
		Str("id", id).
		Msg("successfully updated credential record")

	return nil
}

// Delete removes the record identified by id and owned by userID.
//
// Zero affected rows mean the record does not exist or belongs to another
// user; both cases are reported as [ErrCredentialNotFound].
func (r *credentialRepository) Delete(ctx context.Context, id string, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteCredential, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Delete").
			Str("id", id).
			Int64("user_id", userID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Delete").
			Str("id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().
			Str("func", "credentialRepository.Delete").
			Str("id", id).
			Int64("user_id", userID).
			Msg("record not found")
		return ErrCredentialNotFound
	}

	log.Info().
		Str("func", "credentialRepository.Delete").
		Str("id", id).
		Msg("successfully deleted credential record")

	return nil
}
