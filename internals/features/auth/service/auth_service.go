package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"worklaw_backend/internals/configs"
)

// AuthService verifies the single configured admin account and issues/parses
// access tokens. One account only: username match + bcrypt hash compare.
type AuthService struct {
	settings configs.Settings
}

func NewAuthService(s configs.Settings) *AuthService {
	return &AuthService{settings: s}
}

// Authenticate returns true only for the configured admin username with a
// password matching ADMIN_PASSWORD_HASH. Any bcrypt error counts as a
// mismatch; the caller never learns which part failed.
func (a *AuthService) Authenticate(username, password string) bool {
	if username != a.settings.AdminUsername {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(a.settings.AdminPasswordHash), []byte(password))
	return err == nil
}

// IssueToken builds an HS256 access token with sub, role, iat and exp claims.
// Lifetime comes from JWT_EXPIRE_MIN.
func (a *AuthService) IssueToken(subject, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(a.settings.JWTExpireMin) * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.settings.JWTSecret))
}

// ExpireMinutes reports the configured token lifetime for the login response.
func (a *AuthService) ExpireMinutes() int {
	return a.settings.JWTExpireMin
}

// ParseToken validates signature and expiry and returns the claims, or an
// error for anything invalid.
func (a *AuthService) ParseToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(a.settings.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
