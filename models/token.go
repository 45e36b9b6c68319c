package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// OAuthState is the claim set of the signed state parameter sent to a
// federated provider. Nonce must match the value stored in the session that
// started the flow.
type OAuthState struct {
	// RegisteredClaims provides the standard expiry and issuer claims.
	jwt.RegisteredClaims

	// Nonce is a random per-flow value.
	Nonce string `json:"nonce"`
}
