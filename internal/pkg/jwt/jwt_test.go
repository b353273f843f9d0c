//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"equiploan/internal/domain/user"
	"equiploan/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-equipment-loan"

func newService() jwt.Service {
	return jwt.NewService(testSecret, 15*time.Minute, time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	t.Run("access token round trip", func(t *testing.T) {
		svc := newService()
		userID := uuid.New()

		token, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, jwt.TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token carries its own type", func(t *testing.T) {
		svc := newService()

		token, err := svc.GenerateRefreshToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, claims.TokenType)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := newService()

		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with a different key", func(t *testing.T) {
		other := jwt.NewService("another-secret-entirely-different", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := jwt.NewService(testSecret, -time.Minute, time.Hour)

		token, err := svc.GenerateAccessToken(uuid.New(), user.RoleUser)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestDurations(t *testing.T) {
	svc := jwt.NewService(testSecret, 15*time.Minute, time.Hour)
	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, time.Hour, svc.RefreshTokenDuration())
}
