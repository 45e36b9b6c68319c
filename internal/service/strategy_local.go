package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/dailydoit/dailydoit/models"
)

// localStrategy authenticates email and password credentials.
type localStrategy struct {
	users     store.UserRepository
	hasher    crypto.PasswordHasher
	validator validators.Validator

	logger *logger.Logger
}

// NewLocalStrategy constructs the email and password [AuthStrategy].
func NewLocalStrategy(users store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthStrategy {
	return &localStrategy{
		users:     users,
		hasher:    hasher,
		validator: validators.NewInputValidator(),
		logger:    logger,
	}
}

// Name implements AuthStrategy.
func (l *localStrategy) Name() string {
	return StrategyLocal
}

// Authenticate implements AuthStrategy.
//
// Unknown emails, federated-only accounts and wrong passwords all return
// ErrInvalidCredentials. Hasher failures on malformed stored values are
// returned as internal errors.
func (l *localStrategy) Authenticate(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := l.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*localStrategy.Authenticate").Msg("invalid sign in input")
		return models.Principal{}, err
	}

	email, err := validators.NormalizeEmail(creds.Email)
	if err != nil {
		return models.Principal{}, ErrInvalidCredentials
	}

	user, err := l.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("func", "*localStrategy.Authenticate").Msg("sign in for unknown email")
		return models.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*localStrategy.Authenticate").Msg("user search by email failed")
		return models.Principal{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.HasPassword() {
		log.Info().Int64("user_id", user.ID).Msg("password sign in for federated account")
		return models.Principal{}, ErrInvalidCredentials
	}

	ok, err := l.hasher.Verify(ctx, creds.Password, user.HashedPassword, user.Salt)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Str("func", "*localStrategy.Authenticate").Msg("password verification failed")
		return models.Principal{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Info().Int64("user_id", user.ID).Msg("wrong password")
		return models.Principal{}, ErrInvalidCredentials
	}

	return user.Principal(), nil
}
