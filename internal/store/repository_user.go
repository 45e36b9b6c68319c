package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and activation against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and its activation token inside a single
// transaction and returns the user with server-assigned fields (ID, Active,
// CreatedAt). Nothing is persisted unless both inserts succeed.
//
// Error handling:
//   - unique violation on the email constraint → [ErrEmailAlreadyExists].
//   - any other failure → wrapped with the operation sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, token models.ActivationToken) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to begin transaction")
		return models.User{}, r.wrap(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	created := user
	err = tx.QueryRowContext(ctx, createUser, user.Email, user.HashedPassword, user.Salt, false).
		Scan(&created.ID, &created.Email, &created.Active, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, r.wrap(ErrExecutingQuery, err)
	}

	var tokenID int64
	err = tx.QueryRowContext(ctx, createActivationToken, created.ID, token.Token, token.Expires).Scan(&tokenID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("user_id", created.ID).Msg("failed to insert activation token")
		return models.User{}, r.wrap(ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.CreateUser").Msg("failed to commit transaction")
		return models.User{}, r.wrap(ErrCommitingTransaction, commitErr)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// ExistsWithEmail reports whether an account uses the normalized email.
func (r *userRepository) ExistsWithEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.DB.QueryRowContext(ctx, existsUserWithEmail, email).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsWithEmail").Msg("failed to check email")
		return false, r.wrap(ErrExecutingQuery, err)
	}

	return exists, nil
}

// FindUserByEmail returns the account including its password hash and salt.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the account with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.DB.QueryRowContext(ctx, query, arg).
		Scan(&found.ID, &found.Email, &found.HashedPassword, &found.Salt, &found.Active, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Msg("failed to find user")
		return models.User{}, r.wrap(ErrScanningRow, err)
	}

	return found, nil
}

// Activate marks the account as confirmed. Activating an already active
// account is a no-op.
func (r *userRepository) Activate(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	res, err := r.DB.ExecContext(ctx, activateUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Activate").Int64("user_id", id).Msg("failed to activate user")
		return r.wrap(ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return r.wrap(ErrExecutingQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("activate user %d: %w", id, ErrNoUserWasFound)
	}

	return nil
}

// IsActive reports whether the account has confirmed its email address.
func (r *userRepository) IsActive(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var active bool
	if err := r.DB.QueryRowContext(ctx, isUserActive, id).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.IsActive").Int64("user_id", id).Msg("failed to read user state")
		return false, r.wrap(ErrScanningRow, err)
	}

	return active, nil
}
