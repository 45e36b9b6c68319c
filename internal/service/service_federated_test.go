package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/dailydoit/dailydoit/internal/adapter"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/mock"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSignKey = "session-secret"

func newTestFederated(t *testing.T) (FederatedAuthService, *mock.MockOAuthProvider, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOAuthProvider(ctrl)
	auth := mock.NewMockAuthService(ctrl)

	svc := NewFederatedAuthService(provider, auth, config.Auth{StateTTL: 10 * time.Minute}, testSignKey, logger.Nop())
	return svc, provider, auth
}

func TestFederatedBegin(t *testing.T) {
	svc, provider, _ := newTestFederated(t)

	var gotState string
	provider.EXPECT().AuthCodeURL(gomock.Any()).DoAndReturn(func(state string) string {
		gotState = state
		return "https://accounts.google.com/o/oauth2/auth?state=" + url.QueryEscape(state)
	})

	redirect, err := svc.Begin(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, redirect.Nonce)
	assert.Contains(t, redirect.URL, "accounts.google.com")

	claims, err := utils.ValidateAndParseStateToken(gotState, testSignKey, stateIssuer)
	require.NoError(t, err)
	assert.Equal(t, redirect.Nonce, claims.Nonce)
}

func TestFederatedComplete_Success(t *testing.T) {
	svc, _, auth := newTestFederated(t)
	state, err := utils.GenerateStateToken(stateIssuer, "nonce-1", time.Minute, testSignKey)
	require.NoError(t, err)

	auth.EXPECT().Authenticate(gomock.Any(), StrategyGoogle, models.Credentials{Code: "code"}).
		Return(models.Principal{ID: 3, Email: "e@gmail.com"}, nil)

	principal, err := svc.Complete(context.Background(), state, "nonce-1", "code")

	require.NoError(t, err)
	assert.Equal(t, int64(3), principal.ID)
}

func TestFederatedComplete_RejectsBadState(t *testing.T) {
	valid, err := utils.GenerateStateToken(stateIssuer, "nonce-1", time.Minute, testSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateStateToken(stateIssuer, "nonce-1", time.Minute, "other-secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		state string
		nonce string
	}{
		{"nonce mismatch", valid, "nonce-2"},
		{"no session nonce", valid, ""},
		{"foreign signature", foreign, "nonce-1"},
		{"garbage", "not-a-jwt", "nonce-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestFederated(t)

			_, err := svc.Complete(context.Background(), tt.state, tt.nonce, "code")

			assert.ErrorIs(t, err, ErrInvalidOAuthState)
		})
	}
}

func TestFederatedComplete_ExchangeFailure(t *testing.T) {
	svc, _, auth := newTestFederated(t)
	state, err := utils.GenerateStateToken(stateIssuer, "n", time.Minute, testSignKey)
	require.NoError(t, err)

	auth.EXPECT().Authenticate(gomock.Any(), StrategyGoogle, gomock.Any()).
		Return(models.Principal{}, errors.Join(ErrInvalidCredentials, adapter.ErrCodeExchange))

	_, err = svc.Complete(context.Background(), state, "n", "code")

	assert.ErrorIs(t, err, adapter.ErrCodeExchange)
}

func TestFederatedDisabled(t *testing.T) {
	svc := NewFederatedAuthService(nil, nil, config.Auth{}, testSignKey, logger.Nop())

	assert.False(t, svc.Enabled())

	_, err := svc.Begin(context.Background())
	assert.ErrorIs(t, err, ErrFederatedNotEnabled)

	_, err = svc.Complete(context.Background(), "s", "n", "c")
	assert.ErrorIs(t, err, ErrFederatedNotEnabled)
}

// ─────────────────────────────────────────────
// googleStrategy
// ─────────────────────────────────────────────

func TestGoogleStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOAuthProvider(ctrl)
	resolver := mock.NewMockFederatedResolver(ctrl)
	s := NewGoogleStrategy(provider, resolver, logger.Nop())
	ctx := context.Background()

	provider.EXPECT().Exchange(ctx, "code").Return(googleProfile, nil)
	resolver.EXPECT().Resolve(ctx, googleProfile).Return(models.User{ID: 11, Email: "dave@gmail.com"}, true, nil)

	principal, err := s.Authenticate(ctx, models.Credentials{Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, models.Principal{ID: 11, Email: "dave@gmail.com"}, principal)
	assert.Equal(t, StrategyGoogle, s.Name())
}

func TestGoogleStrategy_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mock.NewMockOAuthProvider(ctrl)
	resolver := mock.NewMockFederatedResolver(ctrl)
	s := NewGoogleStrategy(provider, resolver, logger.Nop())
	ctx := context.Background()

	_, err := s.Authenticate(ctx, models.Credentials{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	rejected := fmt.Errorf("%w: %w", adapter.ErrProviderRejected, adapter.ErrCodeExchange)
	provider.EXPECT().Exchange(ctx, "bad").Return(models.FederatedProfile{}, rejected)
	_, err = s.Authenticate(ctx, models.Credentials{Code: "bad"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, adapter.ErrCodeExchange)

	provider.EXPECT().Exchange(ctx, "outage").Return(models.FederatedProfile{}, adapter.ErrCodeExchange)
	_, err = s.Authenticate(ctx, models.Credentials{Code: "outage"})
	assert.ErrorIs(t, err, adapter.ErrCodeExchange)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	provider.EXPECT().Exchange(ctx, "code").Return(models.FederatedProfile{Provider: models.ProviderGoogle}, nil)
	resolver.EXPECT().Resolve(ctx, gomock.Any()).Return(models.User{}, false, ErrFederatedProfileIncomplete)
	_, err = s.Authenticate(ctx, models.Credentials{Code: "code"})
	assert.ErrorIs(t, err, ErrFederatedProfileIncomplete)
}
