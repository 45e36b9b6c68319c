package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/dailydoit/dailydoit/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	users  store.UserRepository
	tokens store.ActivationTokenRepository

	hasher    crypto.PasswordHasher
	generator crypto.TokenGenerator
	validator validators.Validator
	notifier  Notifier
	reporter  logger.Reporter

	// strategies maps strategy names to their implementations.
	strategies map[string]AuthStrategy

	// tokenTTL controls how long a newly issued activation token is valid.
	tokenTTL time.Duration
	now      func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. Every strategy is registered
// under its Name; a later strategy replaces an earlier one with the same name.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	users store.UserRepository,
	tokens store.ActivationTokenRepository,
	hasher crypto.PasswordHasher,
	generator crypto.TokenGenerator,
	notifier Notifier,
	reporter logger.Reporter,
	cfg config.App,
	logger *logger.Logger,
	strategies ...AuthStrategy,
) AuthService {
	byName := make(map[string]AuthStrategy, len(strategies))
	for _, s := range strategies {
		byName[s.Name()] = s
	}

	return &authService{
		users:      users,
		tokens:     tokens,
		hasher:     hasher,
		generator:  generator,
		validator:  validators.NewInputValidator(),
		notifier:   notifier,
		reporter:   reporter,
		strategies: byName,
		tokenTTL:   cfg.ActivationTokenTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// SignUp creates an inactive local account.
//
// The email is validated and normalized before the existence check. When it
// already belongs to an account, the owner is told by email and
// ErrSignUpConflict is returned; the caller must answer exactly as on
// success so that the response does not reveal registered addresses.
//
// The user row and its first activation token are written in one
// transaction. The activation email and the signup notification are sent in
// the background.
func (a *authService) SignUp(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "*authService.SignUp").Msg("invalid sign up input")
		metrics.SignUpsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return models.Principal{}, err
	}

	email, err := validators.NormalizeEmail(creds.Email)
	if err != nil {
		return models.Principal{}, err
	}

	exists, err := a.users.ExistsWithEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("email existence check failed")
		return models.Principal{}, fmt.Errorf("email existence check failed: %w", err)
	}
	if exists {
		return models.Principal{}, a.conflict(ctx, email)
	}

	hashed, err := a.hasher.Hash(ctx, creds.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("password hashing failed")
		return models.Principal{}, fmt.Errorf("password hashing failed: %w", err)
	}

	token, err := a.newActivationToken(0)
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("activation token generation failed")
		return models.Principal{}, err
	}

	user, err := a.users.CreateUser(ctx, models.User{
		Email:          email,
		HashedPassword: hashed.Hash,
		Salt:           hashed.Salt,
	}, token)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		// lost a race with a concurrent sign-up for the same address
		return models.Principal{}, a.conflict(ctx, email)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.SignUp").Msg("user creation ended with error")
		return models.Principal{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.notifier.SendActivation(ctx, user.Email, token.Token)
	a.notifier.NotifySignup(ctx)
	metrics.SignUpsTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	log.Info().Int64("user_id", user.ID).Msg("user signed up")
	return user.Principal(), nil
}

func (a *authService) conflict(ctx context.Context, email string) error {
	logger.FromContext(ctx).Info().Str("func", "*authService.SignUp").Msg("sign up for an existing email")

	a.notifier.SendAccountExists(ctx, email)
	metrics.SignUpsTotal.WithLabelValues(metrics.ResultConflict).Inc()
	return fmt.Errorf("%w: %w", ErrSignUpConflict, store.ErrEmailAlreadyExists)
}

// Authenticate implements AuthService.
func (a *authService) Authenticate(ctx context.Context, strategy string, creds models.Credentials) (models.Principal, error) {
	s, ok := a.strategies[strategy]
	if !ok {
		return models.Principal{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	principal, err := s.Authenticate(ctx, creds)
	if err != nil {
		metrics.SignInsTotal.WithLabelValues(strategy, metrics.ResultFailure).Inc()
		return models.Principal{}, err
	}

	metrics.SignInsTotal.WithLabelValues(strategy, metrics.ResultSuccess).Inc()
	logger.FromContext(ctx).Info().Int64("user_id", principal.ID).Str("strategy", strategy).Msg("user signed in")
	return principal, nil
}

// Activate confirms the account that owns token.
//
// A token whose expiry is not after the current time is expired. An expired
// token is deleted and, unless the account is already active, a fresh one is
// issued and emailed; ErrActivationTokenExpired is returned either way.
//
// Activating an already active account succeeds.
func (a *authService) Activate(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateActivationToken(token); err != nil {
		metrics.ActivationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return err
	}

	found, err := a.tokens.Get(ctx, token)
	if errors.Is(err, store.ErrActivationTokenNotFound) {
		log.Info().Str("func", "*authService.Activate").Msg("unknown activation token")
		metrics.ActivationsTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return ErrInvalidActivationToken
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Activate").Msg("activation token lookup failed")
		return fmt.Errorf("activation token lookup failed: %w", err)
	}

	if found.ExpiredAt(a.now()) {
		metrics.ActivationsTotal.WithLabelValues(metrics.ResultExpired).Inc()
		a.replaceExpired(ctx, found)
		return ErrActivationTokenExpired
	}

	if err = a.users.Activate(ctx, found.UserID); err != nil {
		log.Err(err).Str("func", "*authService.Activate").Int64("user_id", found.UserID).Msg("user activation failed")
		return fmt.Errorf("user activation failed: %w", err)
	}

	if err = a.tokens.Remove(ctx, found.ID); err != nil {
		// the account is active; a leftover token only activates it again
		log.Err(err).Str("func", "*authService.Activate").Msg("used activation token removal failed")
	}

	metrics.ActivationsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info().Int64("user_id", found.UserID).Msg("user activated")
	return nil
}

// replaceExpired issues a fresh token before dropping the expired one. When
// the reissue fails the expired token stays, so following the same link
// again retries it.
func (a *authService) replaceExpired(ctx context.Context, expired models.ActivationToken) {
	log := logger.FromContext(ctx)

	if err := a.reissue(ctx, expired.UserID); err != nil {
		log.Err(err).Str("func", "*authService.replaceExpired").Int64("user_id", expired.UserID).Msg("activation token reissue failed")
		a.reporter.Report(ctx, fmt.Errorf("activation token reissue failed: %w", err), "activation token reissue failed")
		return
	}

	if err := a.tokens.Remove(ctx, expired.ID); err != nil {
		// the stale token is only ever answered with "expired"
		log.Err(err).Str("func", "*authService.replaceExpired").Msg("expired token removal failed")
	}
}

// reissue stores and emails a fresh activation token for an inactive user.
func (a *authService) reissue(ctx context.Context, userID int64) error {
	user, err := a.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Active {
		return nil
	}

	token, err := a.newActivationToken(userID)
	if err != nil {
		return err
	}
	if _, err = a.tokens.Create(ctx, token); err != nil {
		return err
	}

	a.notifier.SendActivation(ctx, user.Email, token.Token)
	return nil
}

func (a *authService) newActivationToken(userID int64) (models.ActivationToken, error) {
	value, err := a.generator.Generate()
	if err != nil {
		return models.ActivationToken{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.ActivationToken{
		UserID:  userID,
		Token:   value,
		Expires: a.now().Add(a.tokenTTL),
	}, nil
}
