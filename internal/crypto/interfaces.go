package crypto

import (
	"context"

	"github.com/dailydoit/dailydoit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher derives and verifies stored password hashes.
//
// Hash returns a fresh random salt together with the derived key, both
// hex-encoded. Verify re-derives the key for the given salt and compares it
// in constant time. Verify returns an error, never false, when the stored
// values cannot be decoded.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (models.HashedPassword, error)
	Verify(ctx context.Context, password, hash, salt string) (bool, error)
}

// TokenGenerator produces unguessable tokens for activation links.
type TokenGenerator interface {
	Generate() (string, error)
}

// CSRFTokens issues and checks per-session anti-forgery tokens.
type CSRFTokens interface {
	NewSecret() (string, error)
	Create(secret string) (string, error)
	Verify(secret, token string) bool
}
