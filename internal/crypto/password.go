// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/dailydoit/dailydoit/models"
	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2 parameters of stored passwords. Changing any of them invalidates
// every existing hash.
const (
	pbkdf2Iterations = 600_000
	pbkdf2KeyLength  = 32
	saltLength       = 16
)

// pbkdf2Hasher is the PBKDF2-HMAC-SHA256 implementation of [PasswordHasher].
type pbkdf2Hasher struct {
	iterations int
}

// NewPasswordHasher constructs a [PasswordHasher] with 600 000 iterations,
// a 32-byte key and a 16-byte salt.
func NewPasswordHasher() PasswordHasher {
	return &pbkdf2Hasher{iterations: pbkdf2Iterations}
}

func (p *pbkdf2Hasher) Hash(ctx context.Context, password string) (models.HashedPassword, error) {
	if err := ctx.Err(); err != nil {
		return models.HashedPassword{}, err
	}

	salt, err := randomBytes(saltLength)
	if err != nil {
		return models.HashedPassword{}, err
	}

	key := pbkdf2.Key([]byte(password), salt, p.iterations, pbkdf2KeyLength, sha256.New)

	return models.HashedPassword{
		Hash: hex.EncodeToString(key),
		Salt: hex.EncodeToString(salt),
	}, nil
}

func (p *pbkdf2Hasher) Verify(ctx context.Context, password, hash, salt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	expected, err := hex.DecodeString(hash)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodingHash, err)
	}

	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodingSalt, err)
	}

	derived := pbkdf2.Key([]byte(password), rawSalt, p.iterations, pbkdf2KeyLength, sha256.New)

	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}
