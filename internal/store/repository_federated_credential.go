package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/jackc/pgerrcode"
)

// federatedCredentialRepository links users to identities asserted by
// external providers. The (provider, provider_user_id) pair is unique.
type federatedCredentialRepository struct {
	*DB
	logger *logger.Logger
}

// NewFederatedCredentialRepository constructs a
// [FederatedCredentialRepository] backed by the "federated_credentials" table.
func NewFederatedCredentialRepository(db *DB, logger *logger.Logger) FederatedCredentialRepository {
	logger.Debug().Msg("creating federated credential repository")
	return &federatedCredentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *federatedCredentialRepository) Find(ctx context.Context, provider, providerUserID string) (models.FederatedCredential, error) {
	log := logger.FromContext(ctx)

	var found models.FederatedCredential
	err := r.DB.QueryRowContext(ctx, findFederatedCredential, provider, providerUserID).
		Scan(&found.ID, &found.UserID, &found.Provider, &found.ProviderUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FederatedCredential{}, ErrFederatedCredentialNotFound
		}
		log.Err(err).Str("func", "*federatedCredentialRepository.Find").Str("provider", provider).Msg("failed to read federated credential")
		return models.FederatedCredential{}, r.wrap(ErrScanningRow, err)
	}

	return found, nil
}

// CreateWithUser provisions an active, password-less user and links it to
// the provider identity. Both rows are written in one transaction.
//
// Error handling:
//   - unique violation on users_email_key → [ErrEmailAlreadyExists];
//   - unique violation on federated_credentials_provider_key →
//     [ErrFederatedCredentialAlreadyExists] (a concurrent first sign-in won).
func (r *federatedCredentialRepository) CreateWithUser(ctx context.Context, email, provider, providerUserID string) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*federatedCredentialRepository.CreateWithUser").Msg("failed to begin transaction")
		return models.User{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var created models.User
	err = tx.QueryRowContext(ctx, createUser, email, nil, nil, true).
		Scan(&created.ID, &created.Email, &created.Active, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*federatedCredentialRepository.CreateWithUser").Msg("failed to insert user")
		return models.User{}, r.uniqueOrWrap(err)
	}

	if _, err = tx.ExecContext(ctx, createFederatedCredential, created.ID, provider, providerUserID); err != nil {
		log.Err(err).Str("func", "*federatedCredentialRepository.CreateWithUser").Int64("user_id", created.ID).Msg("failed to insert federated credential")
		return models.User{}, r.uniqueOrWrap(err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*federatedCredentialRepository.CreateWithUser").Msg("failed to commit transaction")
		return models.User{}, r.wrap(ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "*federatedCredentialRepository.CreateWithUser").Int64("user_id", created.ID).Str("provider", provider).Msg("federated user created")
	return created, nil
}

func (r *federatedCredentialRepository) uniqueOrWrap(err error) error {
	if postgresError(err) != pgerrcode.UniqueViolation {
		return r.wrap(ErrExecutingQuery, err)
	}

	switch constraintName(err) {
	case federatedCredentialsKey:
		return ErrFederatedCredentialAlreadyExists
	case usersEmailKey:
		return ErrEmailAlreadyExists
	default:
		return r.wrap(ErrExecutingQuery, err)
	}
}
