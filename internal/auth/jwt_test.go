package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/interview-coach/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-long-and-secure-secret-for-tests"
const testUserID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
const testRole = "user"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		assert.Panics(t, auth.Init)
	})

	t.Run("ValidSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", testSecret)
		assert.NotPanics(t, auth.Init)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.SetSecret(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		require.NoError(t, err)

		claims, err := auth.ValidateJWT(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, testUserID, claims.UserID)
		assert.Equal(t, testRole, claims.Role)
		assert.Equal(t, testUserID, claims.Subject)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		require.NoError(t, err)

		_, err = auth.ValidateJWT(tokenStr)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		require.NoError(t, err)

		auth.SetSecret("a-different-secret")
		defer auth.SetSecret(testSecret)

		_, err = auth.ValidateJWT(tokenStr)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := auth.ValidateJWT("not-a-token")
		assert.Error(t, err)
	})
}
