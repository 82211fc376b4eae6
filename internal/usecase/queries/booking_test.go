//go:build unit

package queries_test

import (
	"context"
	"testing"

	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/queries"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingStore struct {
	view    *queries.RoomBookingView
	findErr error
	list    []*queries.RoomBookingView
}

func (s *fakeBookingStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.RoomBookingView, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.view, nil
}

func (s *fakeBookingStore) FindByUserID(_ context.Context, _ uuid.UUID) ([]*queries.RoomBookingView, error) {
	return s.list, nil
}

func (s *fakeBookingStore) FindAll(_ context.Context) ([]*queries.RoomBookingView, error) {
	return s.list, nil
}

func TestRoomBookingGetByID(t *testing.T) {
	ownerID := uuid.New()
	bookingID := uuid.New()
	view := &queries.RoomBookingView{ID: bookingID, UserID: ownerID, RoomNumber: "101"}

	t.Run("owner reads own booking", func(t *testing.T) {
		q := queries.NewRoomBookingQueries(&fakeBookingStore{view: view})
		actor := shared.Principal{ID: ownerID, Role: user.RoleUser}

		got, err := q.GetByID(context.Background(), actor, bookingID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("staff reads any booking", func(t *testing.T) {
		q := queries.NewRoomBookingQueries(&fakeBookingStore{view: view})
		actor := shared.Principal{ID: uuid.New(), Role: user.RoleStaff}

		got, err := q.GetByID(context.Background(), actor, bookingID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("non-owner sees not found, not forbidden", func(t *testing.T) {
		q := queries.NewRoomBookingQueries(&fakeBookingStore{view: view})
		actor := shared.Principal{ID: uuid.New(), Role: user.RoleUser}

		_, err := q.GetByID(context.Background(), actor, bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("missing booking maps to not found", func(t *testing.T) {
		store := &fakeBookingStore{findErr: infra.WrapRepoErr("not found", nil, infra.KindNotFound)}
		q := queries.NewRoomBookingQueries(store)
		actor := shared.Principal{ID: ownerID, Role: user.RoleUser}

		_, err := q.GetByID(context.Background(), actor, bookingID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})
}
