//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/pkg/jwt"
	"acacia-booking/internal/pkg/password"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	view       *queries.AuthorizedUserView
	hash       string
	findErr    error
	byEmailErr error
}

func (s *fakeUserStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.AuthorizedUserView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.view, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, _ string) (*queries.AuthorizedUserView, string, error) {
	if s.byEmailErr != nil {
		return nil, "", s.byEmailErr
	}
	return s.view, s.hash, nil
}

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func credentials(t *testing.T, email, pw string) user.Credentials {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	p, err := user.NewPassword(pw)
	require.NoError(t, err)
	return user.NewCredentials(e, p)
}

func activeUserView(t *testing.T, pw string) (*queries.AuthorizedUserView, string) {
	t.Helper()
	hash, err := password.HashPassword(pw)
	require.NoError(t, err)
	return &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    "chris@example.com",
		Role:     "user",
		IsActive: true,
	}, hash
}

func TestRegister(t *testing.T) {
	t.Run("creates active user with user role", func(t *testing.T) {
		uow := newFakeUoW()
		cmd := commands.NewAuthCommands(uow, &fakeUserStore{}, testJWTService())

		view, err := cmd.Register(context.Background(), commands.RegisterInput{
			Email:    "Chris@Example.com",
			Password: "secret-password",
		})
		require.NoError(t, err)

		assert.Equal(t, "chris@example.com", view.Email)
		assert.Equal(t, "user", view.Role)
		assert.True(t, view.IsActive)
		require.Len(t, uow.tx.users.created, 1)
		assert.NotEqual(t, "secret-password", uow.tx.users.created[0].PasswordHash())
	})

	t.Run("invalid email fails validation", func(t *testing.T) {
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{}, testJWTService())

		_, err := cmd.Register(context.Background(), commands.RegisterInput{Email: "nope", Password: "secret-password"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("weak password fails validation", func(t *testing.T) {
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{}, testJWTService())

		_, err := cmd.Register(context.Background(), commands.RegisterInput{Email: "chris@example.com", Password: "short"})
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.users.createErr = duplicateKeyErr()
		cmd := commands.NewAuthCommands(uow, &fakeUserStore{}, testJWTService())

		_, err := cmd.Register(context.Background(), commands.RegisterInput{Email: "chris@example.com", Password: "secret-password"})
		assert.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	})
}

func TestLogin(t *testing.T) {
	const pw = "secret-password"

	t.Run("issues token pair and records login", func(t *testing.T) {
		view, hash := activeUserView(t, pw)
		uow := newFakeUoW()
		svc := testJWTService()
		cmd := commands.NewAuthCommands(uow, &fakeUserStore{view: view, hash: hash}, svc)

		pair, got, err := cmd.Login(context.Background(), credentials(t, view.Email, pw))
		require.NoError(t, err)
		assert.Equal(t, view, got)
		assert.Equal(t, []uuid.UUID{view.ID}, uow.tx.users.lastLoginIDs)

		access, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, access.TokenType)
		assert.Equal(t, view.ID, access.UserID)

		refresh, err := svc.ValidateToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)
	})

	t.Run("unknown email and wrong password return the same error", func(t *testing.T) {
		view, hash := activeUserView(t, pw)

		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{byEmailErr: notFoundErr()}, testJWTService())
		_, _, err := cmd.Login(context.Background(), credentials(t, view.Email, pw))
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)

		cmd = commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view, hash: hash}, testJWTService())
		_, _, err = cmd.Login(context.Background(), credentials(t, view.Email, "wrong-password"))
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive account cannot log in", func(t *testing.T) {
		view, hash := activeUserView(t, pw)
		view.IsActive = false
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view, hash: hash}, testJWTService())

		_, _, err := cmd.Login(context.Background(), credentials(t, view.Email, pw))
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefresh(t *testing.T) {
	const pw = "secret-password"

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		view, _ := activeUserView(t, pw)
		svc := testJWTService()
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view}, svc)

		refresh, err := svc.GenerateRefreshToken(view.ID, user.RoleUser)
		require.NoError(t, err)

		pair, err := cmd.Refresh(context.Background(), refresh)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		view, _ := activeUserView(t, pw)
		svc := testJWTService()
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view}, svc)

		access, err := svc.GenerateAccessToken(view.ID, user.RoleUser)
		require.NoError(t, err)

		_, err = cmd.Refresh(context.Background(), access)
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		view, _ := activeUserView(t, pw)
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view}, testJWTService())

		_, err := cmd.Refresh(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("inactive account cannot refresh", func(t *testing.T) {
		view, _ := activeUserView(t, pw)
		view.IsActive = false
		svc := testJWTService()
		cmd := commands.NewAuthCommands(newFakeUoW(), &fakeUserStore{view: view}, svc)

		refresh, err := svc.GenerateRefreshToken(view.ID, user.RoleUser)
		require.NoError(t, err)

		_, err = cmd.Refresh(context.Background(), refresh)
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
