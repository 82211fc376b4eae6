package request

import (
	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Credentials{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Credentials{}, err
	}
	return user.NewCredentials(email, pw), nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
