package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/models"
)

// googleStrategy authenticates an authorization code returned by Google.
type googleStrategy struct {
	provider adapter.OAuthProvider
	resolver FederatedResolver

	logger *logger.Logger
}

// NewGoogleStrategy constructs the Google [AuthStrategy]. Only
// [models.Credentials.Code] is read.
func NewGoogleStrategy(provider adapter.OAuthProvider, resolver FederatedResolver, logger *logger.Logger) AuthStrategy {
	return &googleStrategy{
		provider: provider,
		resolver: resolver,
		logger:   logger,
	}
}

// Name implements AuthStrategy.
func (g *googleStrategy) Name() string {
	return StrategyGoogle
}

// Authenticate implements AuthStrategy.
func (g *googleStrategy) Authenticate(ctx context.Context, creds models.Credentials) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if creds.Code == "" {
		return models.Principal{}, ErrInvalidCredentials
	}

	profile, err := g.provider.Exchange(ctx, creds.Code)
	if errors.Is(err, adapter.ErrProviderRejected) {
		log.Info().Err(err).Str("func", "*googleStrategy.Authenticate").Msg("google rejected the sign-in")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		log.Err(err).Str("func", "*googleStrategy.Authenticate").Msg("code exchange failed")
		return models.Principal{}, fmt.Errorf("google code exchange failed: %w", err)
	}

	user, created, err := g.resolver.Resolve(ctx, profile)
	if err != nil {
		return models.Principal{}, err
	}

	log.Debug().Int64("user_id", user.ID).Bool("created", created).Msg("google identity resolved")
	return user.Principal(), nil
}
