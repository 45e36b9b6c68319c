// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

const (
	csrfSecretLength = 18
	csrfSaltLength   = 8
)

// csrfTokens implements [CSRFTokens] as salted HMACs of a per-session secret.
// A token has the form "<salt>-<base64url(HMAC-SHA256(secret, salt))>" with a
// fixed-length salt. Any number of tokens can be minted for one secret and
// every one of them verifies.
type csrfTokens struct{}

// NewCSRFTokens returns the HMAC based [CSRFTokens].
func NewCSRFTokens() CSRFTokens {
	return csrfTokens{}
}

func (csrfTokens) NewSecret() (string, error) {
	return RandomURLSafe(csrfSecretLength)
}

func (csrfTokens) Create(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptyCSRFSecret
	}

	salt, err := RandomURLSafe(csrfSaltLength)
	if err != nil {
		return "", err
	}
	salt = salt[:csrfSaltLength]

	return salt + "-" + csrfMAC(secret, salt), nil
}

func (csrfTokens) Verify(secret, token string) bool {
	if secret == "" || token == "" {
		return false
	}

	if len(token) <= csrfSaltLength+1 || token[csrfSaltLength] != '-' {
		return false
	}
	salt, mac := token[:csrfSaltLength], token[csrfSaltLength+1:]

	expected := csrfMAC(secret, salt)
	return subtle.ConstantTimeCompare([]byte(mac), []byte(expected)) == 1
}

func csrfMAC(secret, salt string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(salt))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
