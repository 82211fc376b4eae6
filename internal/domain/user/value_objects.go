package user

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(value string) (Password, error) {
	if len(value) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: value}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email Email, password Password) Credentials {
	return Credentials{email: email, password: password}
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
