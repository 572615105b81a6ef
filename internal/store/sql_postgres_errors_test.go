package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify_RetryableCodes(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}
	for _, code := range retryable {
		if got := classifier.Classify(&pgconn.PgError{Code: code}); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}
}

func TestClassify_NonRetryableCodes(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.SyntaxError,
		pgerrcode.UndefinedTable,
	}
	for _, code := range nonRetryable {
		if got := classifier.Classify(&pgconn.PgError{Code: code}); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}

func TestClassify_NonPostgresError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("expected NonRetryable for non-postgres error, got %v", got)
	}
	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("expected NonRetryable for nil error, got %v", got)
	}
}

func TestClassify_WrappedError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := errors.Join(errors.New("replace snapshot"), &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("expected Retryable for wrapped deadlock, got %v", got)
	}
}
