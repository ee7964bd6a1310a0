package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("correct horse", "not-a-hash"))
}

func TestAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(7, "admin", true, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, AccessToken, claims.TokenType)
}

func TestRefreshToken(t *testing.T) {
	token, err := GenerateRefreshToken(3, "editor", false, "secret")
	require.NoError(t, err)

	claims, err := ValidateToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.False(t, claims.IsAdmin)
}

func TestValidateTokenRejects(t *testing.T) {
	token, err := GenerateAccessToken(1, "admin", true, "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := GenerateAccessToken(1, "admin", true, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken(expired, "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ValidateToken("garbage", "secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
