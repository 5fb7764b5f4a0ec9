package auth

import (
	"testing"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) service.TokenVerifier {
	t.Helper()

	verifier, err := NewJWTVerifier(&config.Config{Supabase: &config.SupabaseConfig{JWTSecret: testJWTSecret}})
	require.NoError(t, err)

	return verifier
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims(userID uuid.UUID) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   userID.String(),
		"aud":   "authenticated",
		"email": "anna@example.com",
		"role":  "authenticated",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTVerifier_ValidToken(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	claims, err := verifier.VerifyAccessToken(signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), validClaims(userID)))

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "authenticated", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTVerifier_RejectsBadTokens(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	expired := validClaims(userID)
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	wrongAudience := validClaims(userID)
	wrongAudience["aud"] = "anon"

	badSubject := validClaims(userID)
	badSubject["sub"] = "not-a-uuid"

	noExpiry := validClaims(userID)
	delete(noExpiry, "exp")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims(userID))},
		{name: "wrong algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testJWTSecret), validClaims(userID))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), expired)},
		{name: "wrong audience", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), wrongAudience)},
		{name: "bad subject", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), badSubject)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), noExpiry)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.VerifyAccessToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTVerifier(&config.Config{Supabase: &config.SupabaseConfig{}})
	assert.Error(t, err)
}
