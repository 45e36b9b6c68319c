package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/crypto"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
)

const (
	stateIssuer = "dailydoit"
	nonceBytes  = 16
)

type federatedAuthService struct {
	provider adapter.OAuthProvider
	auth     AuthService

	// signKey signs the OAuth state; it is the session secret.
	signKey  string
	stateTTL time.Duration

	logger *logger.Logger
}

// NewFederatedAuthService constructs the service for provider. A nil
// provider yields a disabled service whose methods return
// ErrFederatedNotEnabled.
func NewFederatedAuthService(provider adapter.OAuthProvider, auth AuthService, cfg config.Auth, signKey string, logger *logger.Logger) FederatedAuthService {
	return &federatedAuthService{
		provider: provider,
		auth:     auth,
		signKey:  signKey,
		stateTTL: cfg.StateTTL,
		logger:   logger,
	}
}

// Enabled implements FederatedAuthService.
func (f *federatedAuthService) Enabled() bool {
	return f.provider != nil
}

// Begin implements FederatedAuthService.
func (f *federatedAuthService) Begin(ctx context.Context) (models.FederatedRedirect, error) {
	if !f.Enabled() {
		return models.FederatedRedirect{}, ErrFederatedNotEnabled
	}

	nonce, err := crypto.RandomURLSafe(nonceBytes)
	if err != nil {
		return models.FederatedRedirect{}, fmt.Errorf("%w: %w", ErrStateCreationFailed, err)
	}

	state, err := utils.GenerateStateToken(stateIssuer, nonce, f.stateTTL, f.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*federatedAuthService.Begin").Msg("state token signing failed")
		return models.FederatedRedirect{}, fmt.Errorf("%w: %w", ErrStateCreationFailed, err)
	}

	return models.FederatedRedirect{
		URL:   f.provider.AuthCodeURL(state),
		Nonce: nonce,
	}, nil
}

// Complete implements FederatedAuthService. The state must carry a valid
// signature, be unexpired and hold the nonce stored in the session that
// started the flow.
func (f *federatedAuthService) Complete(ctx context.Context, state, nonce, code string) (models.Principal, error) {
	log := logger.FromContext(ctx)

	if !f.Enabled() {
		return models.Principal{}, ErrFederatedNotEnabled
	}

	if nonce == "" {
		log.Info().Str("func", "*federatedAuthService.Complete").Msg("no pending federated sign in in session")
		return models.Principal{}, ErrInvalidOAuthState
	}

	claims, err := utils.ValidateAndParseStateToken(state, f.signKey, stateIssuer)
	if err != nil {
		log.Info().Err(err).Str("func", "*federatedAuthService.Complete").Msg("invalid state token")
		return models.Principal{}, fmt.Errorf("%w: %w", ErrInvalidOAuthState, err)
	}

	if subtle.ConstantTimeCompare([]byte(claims.Nonce), []byte(nonce)) != 1 {
		log.Warn().Str("func", "*federatedAuthService.Complete").Msg("state nonce does not match session")
		return models.Principal{}, ErrInvalidOAuthState
	}

	return f.auth.Authenticate(ctx, StrategyGoogle, models.Credentials{Code: code})
}
