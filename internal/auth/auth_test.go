package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickmed/accounts-api/internal/auth"
)

const secret = "test-secret"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("Secret1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret1!", hash)
	assert.True(t, auth.CheckPassword(hash, "Secret1!"))
	assert.False(t, auth.CheckPassword(hash, "wrong"))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeAccessToken("u1", "doctor", secret)
	require.NoError(t, err)

	claims, err := auth.ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "doctor", claims.Role)
	assert.False(t, claims.IsRefresh())
}

func TestRefreshTokenMarked(t *testing.T) {
	tok, err := auth.MakeRefreshToken("u1", "vendor", secret)
	require.NoError(t, err)

	claims, err := auth.ParseToken(tok, secret)
	require.NoError(t, err)
	assert.True(t, claims.IsRefresh())
	assert.Equal(t, "vendor", claims.Role)
}

func TestParseTokenWrongSecret(t *testing.T) {
	tok, err := auth.MakeAccessToken("u1", "doctor", secret)
	require.NoError(t, err)

	_, err = auth.ParseToken(tok, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := auth.ParseToken("not.a.token", secret)
	assert.Error(t, err)
}
