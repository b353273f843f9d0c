//go:build unit || e2e

package builder

import (
	"equiploan/internal/domain/user"
)

type UserBuilder struct {
	FirstName    string
	LastName     string
	Email        string
	Username     string
	PasswordHash string
	Position     string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@example.com",
		Username:     "testuser",
		PasswordHash: "hashed_password",
		Position:     "Engineer",
		Role:         "user",
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.FirstName, u.LastName, email, username, u.PasswordHash, u.Position, role), nil
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

