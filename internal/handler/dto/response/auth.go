package response

import (
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"
)

type AuthResponse struct {
	AccessToken  string                      `json:"access_token"`
	RefreshToken string                      `json:"refresh_token"`
	User         *queries.AuthorizedUserView `json:"user"`
}

func FromTokenPair(pair *commands.TokenPair, user *queries.AuthorizedUserView) *AuthResponse {
	return &AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
