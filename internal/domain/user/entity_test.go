//go:build unit

package user_test

import (
	"testing"
	"time"

	"acacia-booking/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("chris@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "$2a$10$hash", user.RoleUser)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "chris@example.com", u.Email().Value())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
}

func TestReconstructUser(t *testing.T) {
	email, err := user.NewEmail("chris@example.com")
	require.NoError(t, err)

	id := uuid.New()
	lastLogin := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	createdAt := lastLogin.Add(-24 * time.Hour)

	got := user.ReconstructUser(id, email, "$2a$10$hash", user.RoleStaff, &lastLogin, false, createdAt, createdAt)
	want := user.ReconstructUser(id, email, "$2a$10$hash", user.RoleStaff, &lastLogin, false, createdAt, createdAt)

	if diff := cmp.Diff(want, got, cmpOpts...); diff != "" {
		t.Errorf("ReconstructUser() mismatch (-want +got):\n%s", diff)
	}

	assert.False(t, got.IsActive())
	assert.True(t, got.Role().IsStaff())
}

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := user.NewEmail("  Chris@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "chris@example.com", e.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"", "not-an-email", "missing@", "@example.com"} {
			_, err := user.NewEmail(input)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "input %q", input)
		}
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("longenough")
	require.NoError(t, err)
	assert.Equal(t, "longenough", p.Value())
}

func TestNewRole(t *testing.T) {
	staff, err := user.NewRole("staff")
	require.NoError(t, err)
	assert.True(t, staff.IsStaff())

	regular, err := user.NewRole("user")
	require.NoError(t, err)
	assert.False(t, regular.IsStaff())

	_, err = user.NewRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
