//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"venue-admin/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := jwt.NewService("secret", "https://id.example.com/realms/venue", time.Hour)
	userID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, []string{"admin"})
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)

		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.True(t, claims.HasRole("admin"))
		assert.False(t, claims.HasRole("user"))
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewService("secret", "https://id.example.com/realms/venue", -time.Minute)
		token, err := expired.GenerateToken(userID, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other", "https://id.example.com/realms/venue", time.Hour)
		token, err := other.GenerateToken(userID, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other := jwt.NewService("secret", "https://elsewhere.example.com", time.Hour)
		token, err := other.GenerateToken(userID, nil)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("top level roles", func(t *testing.T) {
		claims := jwt.Claims{
			Roles: []string{"admin"},
			RegisteredClaims: gojwt.RegisteredClaims{
				Subject:   userID.String(),
				Issuer:    "https://id.example.com/realms/venue",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		got, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, []string{"admin"}, got.AllRoles())
	})

	t.Run("non uuid subject", func(t *testing.T) {
		claims := jwt.Claims{RegisteredClaims: gojwt.RegisteredClaims{Subject: "service-account"}}
		_, err := claims.UserID()
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
