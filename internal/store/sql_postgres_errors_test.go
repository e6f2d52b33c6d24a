package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "syntax error", err: &pgconn.PgError{Code: pgerrcode.SyntaxError}, want: NonRetryable},
		{name: "unknown code", err: &pgconn.PgError{Code: "P0001"}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestPostgresErrorClassifier_Classify_Wrapped(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := errors.Join(ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.ConnectionFailure})
	assert.Equal(t, Retryable, classifier.Classify(wrapped))
}
