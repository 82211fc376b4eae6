package commands

import (
	"context"

	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/pkg/jwt"
	"acacia-booking/internal/pkg/password"
	"acacia-booking/internal/usecase/queries"
	"acacia-booking/internal/usecase/shared"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid email or password")
	ErrUserInactive           = errs.New("user account is inactive")
	ErrTokenGeneration        = errs.New("token generation failed")
	ErrTokenValidation        = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterInput struct {
	Email    string
	Password string
}

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error)
	// Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	userStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, userStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		userStore:  userStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, input RegisterInput) (*queries.AuthorizedUserView, error) {
	email, err := user.NewEmail(input.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if _, err := user.NewPassword(input.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(email, hash, user.RoleUser)

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), newUser)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &queries.AuthorizedUserView{
		ID:       newUser.ID(),
		Email:    newUser.Email().Value(),
		Role:     newUser.Role().String(),
		IsActive: newUser.IsActive(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *queries.AuthorizedUserView, error) {
	view, hash, err := a.userStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error for unknown email and bad password
		return nil, nil, ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, nil, ErrTokenGeneration
	}

	pair, err := a.generatePair(view, role)
	if err != nil {
		return nil, nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return pair, view, nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	view, err := a.userStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrTokenValidation
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}

	return a.generatePair(view, role)
}

func (a *authCommandsImpl) generatePair(view *queries.AuthorizedUserView, role user.Role) (*TokenPair, error) {
	access, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	refresh, err := a.jwtService.GenerateRefreshToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
