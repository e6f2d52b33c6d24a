// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-cred-vault/models"
)

const (
	createUser = `INSERT INTO users (login, auth_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, auth_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, auth_hash, name, created_at
    FROM users
    WHERE login = $1;`

	saveCredential = `INSERT INTO credentials (
			id,
			user_id,
			title,
			username,
			secret,
			url,
			notes,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	deleteCredential = `DELETE FROM credentials
		WHERE id = $1 AND user_id = $2;`
)

// credentialColumns is the canonical column order used by SELECT queries and
// row scanning. Keep in sync with [models.CredentialRecord].
var credentialColumns = []string{
	"id",
	"user_id",
	"title",
	"username",
	"secret",
	"url",
	"notes",
	"created_at",
	"updated_at",
}

// psql is the shared squirrel builder configured for PostgreSQL
// ($n placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectCredentialsQuery builds the SELECT returning every credential
// record owned by userID, most recently created first. The builder does not
// validate userID; scoping semantics are the repository's concern.
func buildSelectCredentialsQuery(_ context.Context, userID int64) (string, []any, error) {
	query, args, err := psql.
		Select(credentialColumns...).
		From("credentials").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateCredentialQuery builds a dynamic UPDATE for the record
// identified by id and owned by userID. Only non-nil fields of update
// produce SET clauses; updated_at is always refreshed. The WHERE clause
// filters by both id and user_id so that a foreign record is never touched.
func buildUpdateCredentialQuery(_ context.Context, id string, userID int64, update models.CredentialUpdate) (string, []any, error) {
	builder := psql.
		Update("credentials").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.SecretEnvelope != nil {
		builder = builder.Set("secret", *update.SecretEnvelope)
	}
	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
