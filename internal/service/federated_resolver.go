package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/metrics"
	"github.com/dailydoit/dailydoit/internal/store"
	"github.com/dailydoit/dailydoit/internal/validators"
	"github.com/dailydoit/dailydoit/models"
)

type federatedResolver struct {
	credentials store.FederatedCredentialRepository
	users       store.UserRepository
	validator   validators.Validator
	notifier    Notifier

	logger *logger.Logger
}

// NewFederatedResolver constructs the resolver backed by the federated
// credential and user repositories.
func NewFederatedResolver(credentials store.FederatedCredentialRepository, users store.UserRepository, notifier Notifier, logger *logger.Logger) FederatedResolver {
	return &federatedResolver{
		credentials: credentials,
		users:       users,
		validator:   validators.NewInputValidator(),
		notifier:    notifier,
		logger:      logger,
	}
}

// Resolve returns the user linked to the provider identity, provisioning an
// active user and its credential in one transaction on first sign-in.
//
// A unique violation during provisioning means a concurrent callback may
// have linked the identity first; the lookup is retried once and its user is
// returned. If the retry finds nothing (the email belongs to an unlinked
// account) the conflict error is returned and accounts are not merged.
func (r *federatedResolver) Resolve(ctx context.Context, profile models.FederatedProfile) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if err := r.validator.Validate(ctx, profile); err != nil {
		log.Info().Err(err).Str("provider", profile.Provider).Msg("incomplete federated profile")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrFederatedProfileIncomplete, err)
	}

	email, err := validators.NormalizeEmail(profile.Email)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrFederatedProfileIncomplete, err)
	}

	user, err := r.lookup(ctx, profile)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, store.ErrFederatedCredentialNotFound) {
		log.Err(err).Str("func", "*federatedResolver.Resolve").Msg("federated credential lookup failed")
		return models.User{}, false, fmt.Errorf("federated credential lookup failed: %w", err)
	}

	user, err = r.credentials.CreateWithUser(ctx, email, profile.Provider, profile.ProviderUserID)
	if err != nil {
		if errors.Is(err, store.ErrFederatedCredentialAlreadyExists) || errors.Is(err, store.ErrEmailAlreadyExists) {
			existing, lookupErr := r.lookup(ctx, profile)
			if lookupErr == nil {
				log.Info().Int64("user_id", existing.ID).Msg("federated credential created concurrently")
				return existing, false, nil
			}
			log.Warn().Err(lookupErr).Str("func", "*federatedResolver.Resolve").Msg("retried lookup after conflict failed")
		}

		log.Err(err).Str("func", "*federatedResolver.Resolve").Msg("federated user creation failed")
		return models.User{}, false, fmt.Errorf("federated user creation failed: %w", err)
	}

	r.notifier.NotifySignup(ctx)
	metrics.FederatedUsersCreatedTotal.Inc()

	log.Info().Int64("user_id", user.ID).Str("provider", profile.Provider).Msg("federated user created")
	return user, true, nil
}

func (r *federatedResolver) lookup(ctx context.Context, profile models.FederatedProfile) (models.User, error) {
	credential, err := r.credentials.Find(ctx, profile.Provider, profile.ProviderUserID)
	if err != nil {
		return models.User{}, err
	}

	return r.users.FindUserByID(ctx, credential.UserID)
}
