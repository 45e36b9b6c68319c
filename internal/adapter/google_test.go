// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/dailydoit/dailydoit/internal/config"
	"github.com/dailydoit/dailydoit/internal/logger"
	"github.com/dailydoit/dailydoit/internal/utils"
	"github.com/dailydoit/dailydoit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// fakeGoogle serves the token and userinfo endpoints.
type fakeGoogle struct {
	tokenStatus    int
	idToken        string
	userInfoStatus int
	userInfo       googleClaims
	userInfoCalls  atomic.Int32
}

func (f *fakeGoogle) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}

		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		body := map[string]any{
			"access_token": "access-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		}
		if f.idToken != "" {
			body["id_token"] = f.idToken
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		f.userInfoCalls.Add(1)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		if f.userInfoStatus != 0 {
			w.WriteHeader(f.userInfoStatus)
			_, _ = w.Write([]byte("denied"))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.userInfo)
	})
	return mux
}

func newTestGoogle(t *testing.T, fake *fakeGoogle, verify idTokenVerifier) *googleProvider {
	t.Helper()

	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	oauthCfg := &oauth2.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:3000/oauth2/redirect/google",
		Scopes:       []string{"openid", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  srv.URL + "/auth",
			TokenURL: srv.URL + "/token",
		},
	}

	if verify == nil {
		verify = func(context.Context, string) (googleClaims, error) {
			t.Fatal("id token verifier must not be called")
			return googleClaims{}, nil
		}
	}

	return newGoogleProvider(oauthCfg, verify, utils.NewHTTPClient(5*time.Second), srv.URL+"/userinfo", logger.Nop())
}

func staticVerifier(claims googleClaims, err error) idTokenVerifier {
	return func(_ context.Context, raw string) (googleClaims, error) {
		if raw != "raw-id-token" {
			return googleClaims{}, errors.New("unexpected token")
		}
		return claims, err
	}
}

// ── Exchange ────────────────────────────────────────────────────────────────

func TestGoogleExchange_IDToken(t *testing.T) {
	fake := &fakeGoogle{idToken: "raw-id-token"}
	g := newTestGoogle(t, fake, staticVerifier(googleClaims{Subject: "123", Email: "a@gmail.com", EmailVerified: true}, nil))

	profile, err := g.Exchange(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, models.FederatedProfile{
		Provider:       models.ProviderGoogle,
		ProviderUserID: "123",
		Email:          "a@gmail.com",
		EmailVerified:  true,
	}, profile)
	assert.Zero(t, fake.userInfoCalls.Load(), "userinfo is only a fallback")
}

func TestGoogleExchange_NoIDToken_FallsBackToUserInfo(t *testing.T) {
	fake := &fakeGoogle{userInfo: googleClaims{Subject: "456", Email: "b@gmail.com", EmailVerified: true}}
	g := newTestGoogle(t, fake, nil)

	profile, err := g.Exchange(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "456", profile.ProviderUserID)
	assert.Equal(t, "b@gmail.com", profile.Email)
	assert.Equal(t, int32(1), fake.userInfoCalls.Load())
}

func TestGoogleExchange_IDTokenWithoutEmail_FallsBackToUserInfo(t *testing.T) {
	fake := &fakeGoogle{idToken: "raw-id-token", userInfo: googleClaims{Subject: "123", Email: "c@gmail.com"}}
	g := newTestGoogle(t, fake, staticVerifier(googleClaims{Subject: "123"}, nil))

	profile, err := g.Exchange(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, "c@gmail.com", profile.Email)
}

func TestGoogleExchange_UserInfoSubjectMismatch(t *testing.T) {
	fake := &fakeGoogle{idToken: "raw-id-token", userInfo: googleClaims{Subject: "999", Email: "c@gmail.com"}}
	g := newTestGoogle(t, fake, staticVerifier(googleClaims{Subject: "123"}, nil))

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrUserInfo)
}

func TestGoogleExchange_InvalidIDToken(t *testing.T) {
	fake := &fakeGoogle{idToken: "raw-id-token"}
	g := newTestGoogle(t, fake, staticVerifier(googleClaims{}, errors.New("bad signature")))

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrInvalidIDToken)
	assert.Zero(t, fake.userInfoCalls.Load())
}

func TestGoogleExchange_TokenEndpointRejectsCode(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{tokenStatus: http.StatusBadRequest}, nil)

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrCodeExchange)
	assert.ErrorIs(t, err, ErrProviderRejected)
}

func TestGoogleExchange_TokenEndpointFailureIsNotRejection(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{tokenStatus: http.StatusServiceUnavailable}, nil)

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrCodeExchange)
	assert.NotErrorIs(t, err, ErrProviderRejected)
}

func TestGoogleExchange_TokenEndpointUnreachable(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{}, nil)
	g.oauth.Endpoint.TokenURL = "http://127.0.0.1:1/token"

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrCodeExchange)
	assert.NotErrorIs(t, err, ErrProviderRejected)
}

func TestGoogleExchange_UserInfoUnauthorized(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{userInfoStatus: http.StatusUnauthorized}, nil)

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrUserInfo)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, ErrProviderRejected)
}

func TestGoogleExchange_UserInfoOutageIsNotRejection(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{userInfoStatus: http.StatusBadGateway}, nil)

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrUserInfo)
	assert.NotErrorIs(t, err, ErrProviderRejected)
}

func TestGoogleExchange_IDTokenVerification(t *testing.T) {
	tests := []struct {
		name         string
		verifyErr    error
		wantRejected bool
	}{
		{"expired token", &oidc.TokenExpiredError{Expiry: time.Now().Add(-time.Minute)}, true},
		{"signing keys unavailable", errors.New("fetching keys: connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGoogle(t, &fakeGoogle{idToken: "raw-id-token"}, staticVerifier(googleClaims{}, tt.verifyErr))

			_, err := g.Exchange(context.Background(), "the-code")

			assert.ErrorIs(t, err, ErrInvalidIDToken)
			assert.Equal(t, tt.wantRejected, errors.Is(err, ErrProviderRejected))
		})
	}
}

func TestGoogleExchange_NoSubject(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{userInfo: googleClaims{Email: "d@gmail.com"}}, nil)

	_, err := g.Exchange(context.Background(), "the-code")

	assert.ErrorIs(t, err, ErrMissingIdentity)
}

// ── AuthCodeURL ─────────────────────────────────────────────────────────────

func TestGoogleAuthCodeURL(t *testing.T) {
	g := newTestGoogle(t, &fakeGoogle{}, nil)

	raw := g.AuthCodeURL("signed-state")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "signed-state", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "openid email", q.Get("scope"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "http://localhost:3000/oauth2/redirect/google", q.Get("redirect_uri"))
}

// ── NewGoogleProvider ───────────────────────────────────────────────────────

func TestNewGoogleProvider_DefaultRedirect(t *testing.T) {
	cfg := config.Auth{GoogleClientID: "id", GoogleClientSecret: "secret"}

	p := NewGoogleProvider(context.Background(), cfg, "https://dailydoit.app/", time.Second, logger.Nop())

	g := p.(*googleProvider)
	assert.Equal(t, "https://dailydoit.app/oauth2/redirect/google", g.oauth.RedirectURL)
	assert.Equal(t, models.ProviderGoogle, p.Name())
	assert.Contains(t, p.AuthCodeURL("s"), "accounts.google.com")
}

func TestNewGoogleProvider_ExplicitRedirect(t *testing.T) {
	cfg := config.Auth{
		GoogleClientID:     "id",
		GoogleClientSecret: "secret",
		GoogleRedirectURL:  "https://proxy.example.com/cb",
	}

	p := NewGoogleProvider(context.Background(), cfg, "https://dailydoit.app", time.Second, logger.Nop())

	assert.Equal(t, "https://proxy.example.com/cb", p.(*googleProvider).oauth.RedirectURL)
}
