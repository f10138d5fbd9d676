package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL bounds how long a bearer credential authorizes calls.
	AccessTokenTTL = time.Hour
	// RefreshTokenTTL is the signing validity of a refresh token. The session
	// row it identifies carries its own, longer expiry.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by both token kinds. Refresh tokens leave
// Role empty.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a short-lived HS256 token carrying user id and role.
func GenerateAccessToken(secret, userID, role string) (string, error) {
	return generate(secret, userID, role, AccessTokenTTL)
}

// GenerateRefreshToken signs a long-lived HS256 token carrying the user id only.
func GenerateRefreshToken(secret, userID string) (string, error) {
	return generate(secret, userID, "", RefreshTokenTTL)
}

func generate(secret, userID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the signature and expiry and returns the claims.
// Malformed, tampered and expired tokens are all rejected with ErrInvalidToken.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
