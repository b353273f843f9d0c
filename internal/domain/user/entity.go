package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The loan core only reads user snapshots for joins; the
// aggregate itself backs authentication and account management.
type User struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	email        Email
	username     Username
	passwordHash string
	position     string
	role         Role
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName string, email Email, username Username, passwordHash, position string, role Role) *User {
	return &User{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		position:     position,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(id uuid.UUID, firstName, lastName string, email Email, username Username, passwordHash, position string, role Role, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		username:     username,
		passwordHash: passwordHash,
		position:     position,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) Email() Email         { return u.email }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Position() string     { return u.position }
func (u *User) Role() Role           { return u.role }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
