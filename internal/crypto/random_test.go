package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationTokenGenerator(t *testing.T) {
	g := NewActivationTokenGenerator()

	first, err := g.Generate()
	require.NoError(t, err)
	second, err := g.Generate()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)

	_, err = hex.DecodeString(first)
	assert.NoError(t, err)
}

func TestRandomURLSafe(t *testing.T) {
	s, err := RandomURLSafe(32)
	require.NoError(t, err)
	assert.Len(t, s, 43)
	assert.NotContains(t, s, "=")
}
