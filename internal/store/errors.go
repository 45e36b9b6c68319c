package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when inserting a user violates the
	// unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrActivationTokenNotFound is returned when no activation token has the
	// requested value.
	ErrActivationTokenNotFound = errors.New("activation token was not found")

	// ErrFederatedCredentialNotFound is returned when a provider identity is
	// not linked to any user.
	ErrFederatedCredentialNotFound = errors.New("federated credential was not found")

	// ErrFederatedCredentialAlreadyExists is returned when a concurrent
	// request has already linked the provider identity.
	ErrFederatedCredentialAlreadyExists = errors.New("federated credential already exists")

	// ErrDayAlreadyExists is returned when the user already completed the date.
	ErrDayAlreadyExists = errors.New("day already exists")

	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTransient marks failures that may succeed when attempted again
	// (lost connection, serialization failure, deadlock).
	ErrTransient = errors.New("transient storage error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingSession is returned when a session payload cannot be
	// serialized or deserialized.
	ErrEncodingSession = errors.New("failed to encode session payload")
)
