//go:build unit

package user_test

import (
	"testing"

	"equiploan/internal/domain/user"
	"equiploan/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test", actual.FirstName())
		assert.Equal(t, "User", actual.LastName())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, "testuser", actual.Username().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("nodomain@") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("plainaddress") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid username",
				mutate: func(b *builder.UserBuilder) { b.Username = "valid_user-1" },
			},
			{
				name:   "too short",
				mutate: func(b *builder.UserBuilder) { b.Username = "ab" },
				errIs:  user.ErrInvalidUsername,
			},
			{
				name:   "forbidden characters",
				mutate: func(b *builder.UserBuilder) { b.Username = "has space" },
				errIs:  user.ErrInvalidUsername,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "user role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "admin role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestCredentials(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		creds, err := user.NewCredentials("test@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := user.NewCredentials("test@example.com", "short")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := user.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tt.mutate != nil {
				tt.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
