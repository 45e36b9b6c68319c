package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/dailydoit/dailydoit/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateStateToken creates a signed HMAC-SHA256 JWT carrying the OAuth
// state of one federated sign-in.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
//   - nonce          : the per-flow value also stored in the session
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	state, err := utils.GenerateStateToken("dailydoit", nonce, 10*time.Minute, "secret")
func GenerateStateToken(issuer, nonce string, ttl time.Duration, signKey string) (string, error) {
	if issuer == "" || nonce == "" || ttl <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating state token")
	}

	now := time.Now()
	claims := &models.OAuthState{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Nonce: nonce,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing state token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseStateToken validates the given state token and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Nonce claim presence
//
// Example usage:
//
//	state, err := utils.ValidateAndParseStateToken(raw, "secret", "dailydoit")
//	if err != nil {
//	    // handle invalid or expired state
//	}
func ValidateAndParseStateToken(tokenString, signKey, issuer string) (models.OAuthState, error) {
	var claims models.OAuthState
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.OAuthState{}, fmt.Errorf("error occurred validating and parsing state token: %w", err)
	}

	if claims.Nonce == "" {
		return models.OAuthState{}, errors.New("empty nonce error")
	}

	return claims, nil
}
