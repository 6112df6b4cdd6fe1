package jwthelper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusfest/fest-api/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := GenerateToken(key, "S12345", domain.RoleHead, "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)

	assert.Equal(t, "S12345", claims.UserID)
	assert.Equal(t, domain.RoleHead, claims.Role)
	assert.Equal(t, "test-agent", claims.UserAgent)
	assert.Equal(t, "S12345", claims.Subject)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken([]byte("right-key"), "42", domain.RoleParticipant, "")
	require.NoError(t, err)

	_, err = ParseToken([]byte("wrong-key"), token)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	key := []byte("test-signing-key")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "S12345",
		Role:   domain.RoleMember,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "S12345",
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	})
	signed, err := expired.SignedString(key)
	require.NoError(t, err)

	_, err = ParseToken(key, signed)
	assert.Error(t, err)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "S12345"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken([]byte("test-signing-key"), signed)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken([]byte("key"), "not-a-token")
	assert.Error(t, err)
}
