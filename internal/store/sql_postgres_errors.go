package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed when the
// caller tries again later.
type ErrorClassification int

const (
	// NonRetryable is the default: constraint violations, bad input, schema
	// errors and anything unknown.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a dropped connection, a
	// serialization failure or a server that is starting up.
	Retryable
)

// Constraint names used to tell unique violations apart.
const (
	usersEmailKey           = "users_email_key"
	federatedCredentialsKey = "federated_credentials_provider_key"
	daysUserDateKey         = "days_user_date_key"
)

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// out of the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for server-side transient SQLSTATE classes,
// for connection errors pgconn marks as safe to retry, and for a broken
// pooled connection. Everything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	if pgconn.SafeToRetry(err) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError classifies by SQLSTATE class: 08 connection exception,
// 40 transaction rollback, 53 insufficient resources and 57 operator
// intervention are retryable. A cancelled statement (57014) is not, since it
// is the server reporting our own timeout.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case code == pgerrcode.QueryCanceled:
		return NonRetryable
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsInsufficientResources(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}
