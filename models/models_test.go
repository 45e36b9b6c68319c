package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivationToken_ExpiredAt(t *testing.T) {
	expires := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	token := ActivationToken{Expires: expires}

	assert.False(t, token.ExpiredAt(expires.Add(-time.Nanosecond)))
	assert.True(t, token.ExpiredAt(expires), "equality counts as expired")
	assert.True(t, token.ExpiredAt(expires.Add(time.Second)))
}

func TestUser_HasPassword(t *testing.T) {
	assert.True(t, User{HashedPassword: "ab", Salt: "cd"}.HasPassword())
	assert.False(t, User{Email: "federated@example.com"}.HasPassword())
	assert.False(t, User{HashedPassword: "ab"}.HasPassword())
}

func TestUser_Principal(t *testing.T) {
	u := User{ID: 7, Email: "a@b.co", HashedPassword: "x", Salt: "y"}
	assert.Equal(t, Principal{ID: 7, Email: "a@b.co"}, u.Principal())
}
