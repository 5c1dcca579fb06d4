// Package auth implements the session token codec, the password credential
// verifier, and the ownership guard. It holds no state and performs no I/O.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/photohub/photohub/internal/common"
)

// TokenValidity is the session horizon: the token's embedded expiry and the
// cookie expiry are both derived from it.
const TokenValidity = 7 * 24 * time.Hour

// Claims carries the single subject claim of a session token on top of the
// registered claim set.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints an HS256-signed session token for userID, expiring
// after validityDuration.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken verifies the token signature and expiry and returns the
// subject identifier. Any failure (malformed input, bad signature, expired
// token) yields common.ErrInvalidToken; a token is never partially trusted.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
