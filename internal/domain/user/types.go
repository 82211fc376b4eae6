package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleUser  Role = "user"
	RoleStaff Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleStaff:
		return true
	default:
		return false
	}
}

func (r Role) IsStaff() bool {
	return r == RoleStaff
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
