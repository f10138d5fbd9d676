package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-jwt-secret"

func TestGenerateAccessToken_ParseRoundTrip(t *testing.T) {
	tokenStr, err := GenerateAccessToken(testSecret, "user-123", "seller")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(testSecret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "seller", claims.Role)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateRefreshToken_OmitsRole(t *testing.T) {
	tokenStr, err := GenerateRefreshToken(testSecret, "user-123")
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Empty(t, claims.Role)
	assert.WithinDuration(t, time.Now().Add(RefreshTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseToken_Rejections(t *testing.T) {
	valid, err := GenerateAccessToken(testSecret, "user-123", "customer")
	require.NoError(t, err)

	expired := signClaims(t, testSecret, &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"expired", expired},
		{"tampered payload", valid[:len(valid)-4] + "AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ParseToken(testSecret, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(testSecret, "user-123", "admin")
	require.NoError(t, err)

	_, err = ParseToken("another-secret", tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsNonHMAC(t *testing.T) {
	// alg=none tokens must never pass, whatever the payload says.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-123"})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func signClaims(t *testing.T, secret string, claims *Claims) string {
	t.Helper()
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenStr
}
