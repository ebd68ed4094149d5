package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{
		UserID:   42,
		Email:    "alice@example.com",
		Name:     "Alice",
		Username: "alice",
		Phone:    "111",
	}

	raw, err := IssueToken(claims, testSecret, time.Hour)
	require.NoError(t, err)

	parsed, err := ParseToken(raw, testSecret)
	require.NoError(t, err)
	assert.EqualValues(t, 42, parsed.UserID)
	assert.Equal(t, "alice@example.com", parsed.Email)
	assert.Equal(t, "alice", parsed.Username)
}

func TestTokenTampered(t *testing.T) {
	raw, err := IssueToken(Claims{UserID: 1}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(raw+"x", testSecret)
	assert.Error(t, err)

	_, err = ParseToken(raw, "other-secret")
	assert.Error(t, err)

	_, err = ParseToken("", testSecret)
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	raw, err := IssueToken(Claims{UserID: 1}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(raw, testSecret)
	assert.Error(t, err, "expired token must be rejected")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
