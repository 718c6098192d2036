package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued token is accepted. There is no
// refresh mechanism; clients log in again after expiry.
const TokenValidity = 24 * time.Hour

// GenerateToken signs an HS256 token carrying the user id as the subject.
func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})
	return token.SignedString(secret)
}

// ParseToken verifies signature and expiry and returns the subject user id.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
