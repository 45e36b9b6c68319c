package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
	"golang.org/x/oauth2"
	googleOAuth2 "golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
	googleJWKSURL     = "https://www.googleapis.com/oauth2/v3/certs"

	// GoogleCallbackPath is the default redirect path registered with Google.
	GoogleCallbackPath = "/oauth2/redirect/google"
)

// googleClaims is the subset of ID token and userinfo claims the server needs.
type googleClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
}

// idTokenVerifier checks the signature, audience, issuer and expiry of a raw
// ID token and returns its claims.
type idTokenVerifier func(ctx context.Context, rawIDToken string) (googleClaims, error)

type googleProvider struct {
	oauth       *oauth2.Config
	verify      idTokenVerifier
	client      *utils.HTTPClient
	userInfoURL string

	logger *logger.Logger
}

// NewGoogleProvider constructs the Google [OAuthProvider]. ID tokens are
// verified against Google's published signing keys, fetched lazily with ctx,
// so ctx must live as long as the server.
//
// The redirect URL defaults to baseURL + [GoogleCallbackPath].
func NewGoogleProvider(ctx context.Context, cfg config.Auth, baseURL string, timeout time.Duration, logger *logger.Logger) OAuthProvider {
	redirectURL := cfg.GoogleRedirectURL
	if redirectURL == "" {
		redirectURL = strings.TrimRight(baseURL, "/") + GoogleCallbackPath
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{oidc.ScopeOpenID, "email"},
		Endpoint:     googleOAuth2.Endpoint,
	}

	keySet := oidc.NewRemoteKeySet(ctx, googleJWKSURL)
	verifier := oidc.NewVerifier(models.ProviderGoogle, keySet, &oidc.Config{ClientID: cfg.GoogleClientID})

	logger.Debug().Str("redirect_url", redirectURL).Msg("creating google oauth provider")

	return newGoogleProvider(oauthCfg, oidcVerifier(verifier), utils.NewHTTPClient(timeout), googleUserInfoURL, logger)
}

func newGoogleProvider(oauthCfg *oauth2.Config, verify idTokenVerifier, client *utils.HTTPClient, userInfoURL string, logger *logger.Logger) *googleProvider {
	return &googleProvider{
		oauth:       oauthCfg,
		verify:      verify,
		client:      client,
		userInfoURL: userInfoURL,
		logger:      logger,
	}
}

func oidcVerifier(verifier *oidc.IDTokenVerifier) idTokenVerifier {
	return func(ctx context.Context, rawIDToken string) (googleClaims, error) {
		idToken, err := verifier.Verify(ctx, rawIDToken)
		if err != nil {
			return googleClaims{}, err
		}

		var claims googleClaims
		if err = idToken.Claims(&claims); err != nil {
			return googleClaims{}, err
		}
		return claims, nil
	}
}

// Name implements [OAuthProvider].
func (g *googleProvider) Name() string {
	return models.ProviderGoogle
}

// AuthCodeURL implements [OAuthProvider].
func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// Exchange implements [OAuthProvider]. The identity comes from the verified
// ID token; the userinfo endpoint is queried when the token response carries
// no ID token or the token has no email claim.
func (g *googleProvider) Exchange(ctx context.Context, code string) (models.FederatedProfile, error) {
	log := logger.FromContext(ctx)

	// the token request goes through the same client, timeouts and retries
	ctx = context.WithValue(ctx, oauth2.HTTPClient, g.client.GetClient())

	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*googleProvider.Exchange").Msg("authorization code exchange failed")
		return models.FederatedProfile{}, asRejection(fmt.Errorf("%w: %w", ErrCodeExchange, err))
	}

	var claims googleClaims
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		claims, err = g.verify(ctx, rawIDToken)
		if err != nil {
			log.Err(err).Str("func", "*googleProvider.Exchange").Msg("id token verification failed")
			return models.FederatedProfile{}, asRejection(fmt.Errorf("%w: %w", ErrInvalidIDToken, err))
		}
	}

	if claims.Subject == "" || claims.Email == "" {
		info, err := g.userInfo(ctx, token.AccessToken)
		if err != nil {
			log.Err(err).Str("func", "*googleProvider.Exchange").Msg("userinfo request failed")
			return models.FederatedProfile{}, asRejection(err)
		}

		if claims.Subject != "" && info.Subject != claims.Subject {
			return models.FederatedProfile{}, fmt.Errorf("%w: %w: subject mismatch", ErrProviderRejected, ErrUserInfo)
		}
		claims = info
	}

	if claims.Subject == "" {
		return models.FederatedProfile{}, fmt.Errorf("%w: %w", ErrProviderRejected, ErrMissingIdentity)
	}

	return models.FederatedProfile{
		Provider:       models.ProviderGoogle,
		ProviderUserID: claims.Subject,
		Email:          claims.Email,
		EmailVerified:  claims.EmailVerified,
	}, nil
}

func (g *googleProvider) userInfo(ctx context.Context, accessToken string) (googleClaims, error) {
	var claims googleClaims

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&claims).
		Get(g.userInfoURL)
	if err != nil {
		return googleClaims{}, fmt.Errorf("%w: %w", ErrUserInfo, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return googleClaims{}, fmt.Errorf("%w: %w", ErrUserInfo, err)
	}

	return claims, nil
}

// asRejection marks err with [ErrProviderRejected] when Google answered and
// refused the request: a 4xx from the token endpoint (invalid_grant and
// friends), a 400/401/403 from userinfo, or an expired ID token. Transport
// failures and 5xx answers are returned unchanged.
func asRejection(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil &&
		retrieveErr.Response.StatusCode >= http.StatusBadRequest &&
		retrieveErr.Response.StatusCode < http.StatusInternalServerError {
		return fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	var expiredErr *oidc.TokenExpiredError
	if errors.As(err, &expiredErr) {
		return fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		return fmt.Errorf("%w: %w", ErrProviderRejected, err)
	}

	return err
}
