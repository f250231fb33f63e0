package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	Init("unit-test-secret", 10, 24)

	token, err := GenerateAccessToken(42, RoleAdmin)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, SubjectAccess, claims.Subject)
	assert.Empty(t, claims.TokenID)
}

func TestRefreshTokenCarriesTokenID(t *testing.T) {
	Init("unit-test-secret", 10, 24)

	token, tokenID, err := GenerateRefreshToken(7, RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.TokenID)
	assert.Equal(t, SubjectRefresh, claims.Subject)
}

func TestParseTokenRejectsOtherSecret(t *testing.T) {
	Init("secret-a", 10, 24)
	token, err := GenerateAccessToken(1, RoleUser)
	require.NoError(t, err)

	Init("secret-b", 10, 24)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	Init("unit-test-secret", -1, 24)
	token, err := GenerateAccessToken(1, RoleUser)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
