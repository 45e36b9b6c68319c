package crypto

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastHasher keeps the derivation identical apart from the iteration count.
func fastHasher() *pbkdf2Hasher {
	return &pbkdf2Hasher{iterations: 1000}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	ctx := context.Background()
	h := NewPasswordHasher()

	hashed, err := h.Hash(ctx, "correct horse battery")
	require.NoError(t, err)

	ok, err := h.Verify(ctx, "correct horse battery", hashed.Hash, hashed.Salt)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(ctx, "correct horse battery!", hashed.Hash, hashed.Salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_Encoding(t *testing.T) {
	hashed, err := fastHasher().Hash(context.Background(), "password123")
	require.NoError(t, err)

	key, err := hex.DecodeString(hashed.Hash)
	require.NoError(t, err)
	assert.Len(t, key, pbkdf2KeyLength)

	salt, err := hex.DecodeString(hashed.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, saltLength)
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	h := fastHasher()

	first, err := h.Hash(context.Background(), "same-password")
	require.NoError(t, err)
	second, err := h.Hash(context.Background(), "same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestPasswordHasher_NonMalleable(t *testing.T) {
	ctx := context.Background()
	h := fastHasher()

	hashed, err := h.Hash(ctx, "password123")
	require.NoError(t, err)

	other, err := h.Hash(ctx, "password123")
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
		salt string
	}{
		{name: "flipped hash nibble", hash: flipFirstNibble(hashed.Hash), salt: hashed.Salt},
		{name: "flipped salt nibble", hash: hashed.Hash, salt: flipFirstNibble(hashed.Salt)},
		{name: "salt of another hash", hash: hashed.Hash, salt: other.Salt},
		{name: "truncated hash", hash: hashed.Hash[:len(hashed.Hash)-2], salt: hashed.Salt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify(ctx, "password123", tt.hash, tt.salt)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestPasswordHasher_Verify_MalformedInput(t *testing.T) {
	ctx := context.Background()
	h := fastHasher()

	ok, err := h.Verify(ctx, "password123", "zz-not-hex", "00")
	assert.ErrorIs(t, err, ErrDecodingHash)
	assert.False(t, ok)

	ok, err = h.Verify(ctx, "password123", "00", "not-hex")
	assert.ErrorIs(t, err, ErrDecodingSalt)
	assert.False(t, ok)
}

func TestPasswordHasher_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fastHasher().Hash(ctx, "password123")
	assert.ErrorIs(t, err, context.Canceled)
}

func flipFirstNibble(s string) string {
	b := []byte(s)
	if b[0] == '0' {
		b[0] = '1'
	} else {
		b[0] = '0'
	}
	return string(b)
}
