package store

import (
	"context"
	"time"

	"github.com/dailydoit/dailydoit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts an inactive local account together with its first
	// activation token in one transaction.
	CreateUser(ctx context.Context, user models.User, token models.ActivationToken) (models.User, error)
	ExistsWithEmail(ctx context.Context, email string) (bool, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	Activate(ctx context.Context, id int64) error
	IsActive(ctx context.Context, id int64) (bool, error)
}

// ActivationTokenRepository persists single-use activation tokens.
type ActivationTokenRepository interface {
	Create(ctx context.Context, token models.ActivationToken) (models.ActivationToken, error)
	// Get returns the token with exactly this value without checking expiry.
	Get(ctx context.Context, token string) (models.ActivationToken, error)
	// Remove is idempotent.
	Remove(ctx context.Context, id int64) error
}

// FederatedCredentialRepository links users to external identity providers.
type FederatedCredentialRepository interface {
	Find(ctx context.Context, provider, providerUserID string) (models.FederatedCredential, error)
	// CreateWithUser provisions an active user and its credential in one
	// transaction.
	CreateWithUser(ctx context.Context, email, provider, providerUserID string) (models.User, error)
}

// DayRepository persists completed calendar days.
type DayRepository interface {
	Exists(ctx context.Context, userID int64, date time.Time) (bool, error)
	Create(ctx context.Context, userID int64, date time.Time) error
	Remove(ctx context.Context, userID int64, date time.Time) error
	ListForUserInYear(ctx context.Context, userID int64, year int) ([]models.Day, error)
}

// SessionRepository is a session backend. Get returns [ErrSessionNotFound]
// for unknown and expired ids.
type SessionRepository interface {
	Get(ctx context.Context, id string) (models.SessionRecord, error)
	Set(ctx context.Context, record models.SessionRecord) error
	Touch(ctx context.Context, id string, expires time.Time) error
	Destroy(ctx context.Context, id string) error
}

// SessionPruner deletes expired sessions from backends without native expiry.
type SessionPruner interface {
	Prune(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
