// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cred-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectCredentialsQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)

	query, args, err := buildSelectCredentialsQuery(ctx, userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from credentials")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by created_at desc")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildSelectCredentialsQuery_SelectsAllExpectedColumns(t *testing.T) {
	ctx := context.Background()

	query, _, err := buildSelectCredentialsQuery(ctx, 1)
	require.NoError(t, err)

	q := strings.ToLower(query)

	// Check that all expected columns are present in the SELECT section.
	// This is a "contains" check; it does not enforce order but catches regressions quickly.
	cols := []string{
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
	for _, c := range cols {
		require.Contains(t, q, c)
	}

	// Ensure this is not SELECT *.
	fromIdx := strings.Index(q, " from ")
	require.NotEqual(t, -1, fromIdx)
	require.NotContains(t, q[:fromIdx], "*", "query should not use SELECT *")
}

func Test_buildSelectCredentialsQuery(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: valid user ID",
			userID: 42,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 1)
				assert.Equal(t, int64(42), args[0])
			},
		},
		{
			name:   "success: zero user ID",
			userID: 0,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Len(t, args, 1)
				assert.Equal(t, int64(0), args[0],
					"zero user ID should be passed as-is (DB will return empty result)")
			},
		},
		{
			name:   "success: negative user ID",
			userID: -1,
			checkQuery: func(t *testing.T, query string, args []any) {
				// buildSelectCredentialsQuery does not validate userID.
				// Validation is a service-layer concern; this function only builds SQL.
				require.Len(t, args, 1)
				assert.Equal(t, int64(-1), args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			query, args, err := buildSelectCredentialsQuery(ctx, tt.userID)

			require.NoError(t, err)
			assert.NotEmpty(t, query)
			assert.NotNil(t, args)

			if tt.checkQuery != nil {
				tt.checkQuery(t, query, args)
			}
		})
	}
}

func Test_buildUpdateCredentialQuery_SQLContainsParts(t *testing.T) {
	userID := int64(42)

	title := "Gmail"
	username := "john@example.com"
	envelope := models.CipherEnvelope("AQ==")
	url := "https://mail.google.com"
	notes := "personal"

	tests := []struct {
		name       string
		update     models.CredentialUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "success: no optional fields (only updated_at refresh)",
			update: models.CredentialUpdate{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "update credentials")
				require.Contains(t, q, "updated_at = now()")
				require.Contains(t, q, "where")

				// Filters use placeholders $1, $2.
				require.Contains(t, query, "$1")
				require.Contains(t, query, "$2")

				// No optional SET clauses.
				require.NotContains(t, q, "title = $")
				require.NotContains(t, q, "username = $")
				require.NotContains(t, q, "secret = $")
				require.NotContains(t, q, "url = $")
				require.NotContains(t, q, "notes = $")

				// Args: id, userID (squirrel Eq sorts keys: id, user_id).
				require.Len(t, args, 2)
				require.Equal(t, "rec-1", args[0])
				require.Equal(t, userID, args[1])
			},
		},
		{
			name: "success: all fields set (placeholders are sequential)",
			update: models.CredentialUpdate{
				Title:          &title,
				Username:       &username,
				SecretEnvelope: &envelope,
				URL:            &url,
				Notes:          &notes,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// SET placeholders are sequential: $1..$5, WHERE is $6, $7.
				require.Contains(t, q, "title = $1")
				require.Contains(t, q, "username = $2")
				require.Contains(t, q, "secret = $3")
				require.Contains(t, q, "url = $4")
				require.Contains(t, q, "notes = $5")
				require.Contains(t, query, "$6")
				require.Contains(t, query, "$7")

				// Args order: SET values, then WHERE (id, user_id).
				require.Len(t, args, 7)
				require.Equal(t, "Gmail", args[0])
				require.Equal(t, "john@example.com", args[1])
				require.Equal(t, models.CipherEnvelope("AQ=="), args[2])
				require.Equal(t, "https://mail.google.com", args[3])
				require.Equal(t, "personal", args[4])
				require.Equal(t, "rec-1", args[5])
				require.Equal(t, userID, args[6])
			},
		},
		{
			name: "success: only secret envelope",
			update: models.CredentialUpdate{
				SecretEnvelope: &envelope,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "secret = $1")
				require.NotContains(t, q, "title = $")
				require.NotContains(t, q, "notes = $")

				require.Len(t, args, 3)
				require.Equal(t, models.CipherEnvelope("AQ=="), args[0])
				require.Equal(t, "rec-1", args[1])
				require.Equal(t, userID, args[2])
			},
		},
		{
			name: "success: idempotent for same input",
			update: models.CredentialUpdate{
				Title: &title,
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				query2, args2, err2 := buildUpdateCredentialQuery(
					context.Background(), "rec-1", userID,
					models.CredentialUpdate{Title: &title},
				)
				require.NoError(t, err2)
				require.Equal(t, query, query2)
				require.Equal(t, args, args2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateCredentialQuery(context.Background(), "rec-1", userID, tt.update)

			require.NoError(t, err)
			require.NotEmpty(t, query)
			require.NotNil(t, args)

			tt.checkQuery(t, query, args)
		})
	}
}
