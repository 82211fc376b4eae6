package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Used for authentication and booking ownership.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
