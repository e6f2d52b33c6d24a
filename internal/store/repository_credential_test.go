// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-cred-vault/internal/logger"
	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")

	l := logger.Nop()
	repo := &credentialRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testRecord() models.CredentialRecord {
	now := time.Now()
	return models.CredentialRecord{
		ID:             "0191e3a8-0000-7000-8000-000000000001",
		UserID:         42,
		Title:          "Gmail",
		Username:       "john@example.com",
		SecretEnvelope: "AQIDBA==",
		URL:            "https://mail.google.com",
		Notes:          "personal",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestCredentialRepository_Save_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	record := testRecord()

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs(
			record.ID,
			record.UserID,
			record.Title,
			record.Username,
			record.SecretEnvelope,
			record.URL,
			record.Notes,
			record.CreatedAt,
			record.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), record)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Save_ZeroRows(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), testRecord())
	assert.ErrorIs(t, err, ErrCredentialNotSaved)
}

func TestCredentialRepository_Save_QueryError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO credentials").
		WillReturnError(errors.New("connection reset"))

	err := repo.Save(context.Background(), testRecord())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentialRepository_GetAll_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(credentialColumns).
		AddRow("id-2", int64(42), "GitHub", "john", "env-2", "", "", now, now).
		AddRow("id-1", int64(42), "Gmail", "john@example.com", "env-1", "https://mail.google.com", "personal", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM credentials").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	records, err := repo.GetAll(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Row order is preserved: the query sorts by created_at DESC.
	assert.Equal(t, "id-2", records[0].ID)
	assert.Equal(t, "id-1", records[1].ID)
	assert.Equal(t, models.CipherEnvelope("env-1"), records[1].SecretEnvelope)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_GetAll_Empty(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM credentials").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(credentialColumns))

	records, err := repo.GetAll(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCredentialRepository_GetAll_QueryError(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM credentials").
		WillReturnError(errors.New("down"))

	_, err := repo.GetAll(context.Background(), 42)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCredentialRepository_Update_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	title := "New title"
	envelope := models.CipherEnvelope("new-env")

	mock.ExpectExec("UPDATE credentials").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "rec-1", 42, models.CredentialUpdate{
		Title:          &title,
		SecretEnvelope: &envelope,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Update_NotFound(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE credentials").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "missing", 42, models.CredentialUpdate{})
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM credentials").
		WithArgs("rec-1", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "rec-1", 42)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM credentials").
		WithArgs("missing", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing", 42)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}

func TestCredentialRepository_Delete_ForeignOwnerLooksLikeMissing(t *testing.T) {
	repo, mock, db := newTestCredentialRepo(t)
	defer db.Close()

	// A record owned by another user matches zero rows; the caller cannot
	// distinguish absence from foreign ownership.
	mock.ExpectExec("DELETE FROM credentials").
		WithArgs("rec-1", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "rec-1", 99)
	assert.ErrorIs(t, err, ErrCredentialNotFound)
}
