package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"worklaw_backend/internals/configs"
)

func testSettings(t *testing.T, password string) configs.Settings {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return configs.Settings{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTExpireMin:      30,
	}
}

func TestAuthenticate(t *testing.T) {
	svc := NewAuthService(testSettings(t, "correct horse"))

	assert.True(t, svc.Authenticate("admin", "correct horse"))
	assert.False(t, svc.Authenticate("admin", "wrong"))
	assert.False(t, svc.Authenticate("root", "correct horse"))
	assert.False(t, svc.Authenticate("", ""))
}

func TestAuthenticateBadStoredHash(t *testing.T) {
	svc := NewAuthService(configs.Settings{
		AdminUsername:     "admin",
		AdminPasswordHash: "not-a-bcrypt-hash",
	})

	assert.False(t, svc.Authenticate("admin", "anything"))
}

func TestIssueAndParseToken(t *testing.T) {
	svc := NewAuthService(testSettings(t, "pw"))

	tokenString, err := svc.IssueToken("admin", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := svc.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, 30*60, exp-iat, 1, "lifetime follows JWT_EXPIRE_MIN")
}

func TestParseTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(testSettings(t, "pw"))
	tokenString, err := issuer.IssueToken("admin", "admin")
	require.NoError(t, err)

	other := testSettings(t, "pw")
	other.JWTSecret = "different-secret"
	_, err = NewAuthService(other).ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	s := testSettings(t, "pw")
	svc := NewAuthService(s)

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"iat":  now.Add(-2 * time.Hour).Unix(),
		"exp":  now.Add(-time.Hour).Unix(),
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.JWTSecret))
	require.NoError(t, err)

	_, err = svc.ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnsignedAlg(t *testing.T) {
	s := testSettings(t, "pw")
	svc := NewAuthService(s)

	claims := jwt.MapClaims{"sub": "admin", "role": "admin"}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ParseToken(tokenString)
	assert.Error(t, err)
}
