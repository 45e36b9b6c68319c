package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

const activationTokenLength = 16

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingRandom, err)
	}
	return b, nil
}

// RandomHex returns n random bytes as a hex string.
func RandomHex(n int) (string, error) {
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomURLSafe returns n random bytes as unpadded base64url.
func RandomURLSafe(n int) (string, error) {
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type hexTokenGenerator struct {
	size int
}

// NewActivationTokenGenerator returns a [TokenGenerator] producing 128-bit
// hex tokens.
func NewActivationTokenGenerator() TokenGenerator {
	return &hexTokenGenerator{size: activationTokenLength}
}

func (g *hexTokenGenerator) Generate() (string, error) {
	return RandomHex(g.size)
}
