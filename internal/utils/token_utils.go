package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminTokenIssuer is the iss claim of tokens minted for the admin API.
const AdminTokenIssuer = "currex"

// GenerateJWT generates a new HS256 token whose subject is recorded as created_by on admin writes.
func GenerateJWT(userID string, secret string, expiryDuration time.Duration, now time.Time) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	if expiryDuration <= 0 {
		return "", errors.New("expiry must be positive")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    AdminTokenIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
