package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued session token stays accepted.
const TokenValidity = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims embeds the registered claim set and adds the authenticated admin's
// identity. Tokens are stateless; nothing is persisted server-side.
type Claims struct {
	jwt.RegisteredClaims
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
}

// GenerateToken signs a session token for the given admin, valid for
// validityDuration from now.
func GenerateToken(adminID uint, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		AdminID:  adminID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates the signature and expiry of a session token and returns
// its claims. Any failure, signature, expiry or shape, yields an error.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
