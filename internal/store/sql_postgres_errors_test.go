package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"too many connections", &pgconn.PgError{Code: pgerrcode.TooManyConnections}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, Retryable},
		{"query canceled", &pgconn.PgError{Code: pgerrcode.QueryCanceled}, NonRetryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"foreign key violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, NonRetryable},
		{"undefined table", &pgconn.PgError{Code: pgerrcode.UndefinedTable}, NonRetryable},
		{"invalid datetime", &pgconn.PgError{Code: pgerrcode.InvalidDatetimeFormat}, NonRetryable},
		{"wrapped serialization failure", fmt.Errorf("%w: %w", ErrExecutingQuery, &pgconn.PgError{Code: pgerrcode.SerializationFailure}), Retryable},
		{"bad pooled connection", fmt.Errorf("ping: %w", driver.ErrBadConn), Retryable},
		{"context deadline", context.DeadlineExceeded, NonRetryable},
		{"unknown", errors.New("boom"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
