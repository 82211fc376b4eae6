//go:build unit

package commands_test

import (
	"context"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/event"
	"acacia-booking/internal/domain/reservation"
	"acacia-booking/internal/domain/room"
	"acacia-booking/internal/domain/ticket"
	"acacia-booking/internal/domain/user"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/usecase/commands"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Hand-written fakes for the transactional write side. The UnitOfWork fake
// runs the closure synchronously against in-memory repositories, so tests
// exercise the real command logic without a database.

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindDuplicateKey)
}

type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		rooms:         &fakeRoomRepo{},
		roomBookings:  &fakeRoomBookingRepo{},
		reservations:  &fakeReservationRepo{},
		eventBookings: &fakeEventRepo{},
		tickets:       &fakeTicketRepo{},
		users:         &fakeUserRepo{},
		reads:         &fakeReads{},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}

type fakeTx struct {
	rooms         *fakeRoomRepo
	roomBookings  *fakeRoomBookingRepo
	reservations  *fakeReservationRepo
	eventBookings *fakeEventRepo
	tickets       *fakeTicketRepo
	users         *fakeUserRepo
	reads         *fakeReads
}

func (t *fakeTx) Rooms() shared.RoomRepository                 { return t.rooms }
func (t *fakeTx) RoomBookings() shared.RoomBookingRepository   { return t.roomBookings }
func (t *fakeTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *fakeTx) EventBookings() shared.EventBookingRepository { return t.eventBookings }
func (t *fakeTx) Tickets() shared.TicketRepository             { return t.tickets }
func (t *fakeTx) Users() shared.UserRepository                 { return t.users }
func (t *fakeTx) Reads() shared.CommandReads                   { return t.reads }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type setOccupiedCall struct {
	id       uuid.UUID
	occupied bool
}

type fakeRoomRepo struct {
	created          []*room.Room
	createErr        error
	lockRoom         *room.Room
	lockErr          error
	exists           bool
	existsErr        error
	setOccupiedErr   error
	setOccupiedCalls []setOccupiedCall
}

func (r *fakeRoomRepo) Create(_ context.Context, _ db.DBTX, rm *room.Room) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, rm)
	return rm.ID(), nil
}

func (r *fakeRoomRepo) LockByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*room.Room, error) {
	if r.lockErr != nil {
		return nil, r.lockErr
	}
	return r.lockRoom, nil
}

func (r *fakeRoomRepo) ExistsByNumber(_ context.Context, _ db.DBTX, _ string) (bool, error) {
	return r.exists, r.existsErr
}

func (r *fakeRoomRepo) SetOccupied(_ context.Context, _ db.DBTX, id uuid.UUID, occupied bool) error {
	if r.setOccupiedErr != nil {
		return r.setOccupiedErr
	}
	r.setOccupiedCalls = append(r.setOccupiedCalls, setOccupiedCall{id: id, occupied: occupied})
	return nil
}

type fakeRoomBookingRepo struct {
	created        []*booking.RoomBooking
	createErr      error
	conflict       bool
	conflictErr    error
	markClearedErr error
	clearedIDs     []uuid.UUID
}

func (r *fakeRoomBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.RoomBooking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, b)
	return b.ID(), nil
}

func (r *fakeRoomBookingRepo) HasActiveConflict(_ context.Context, _ db.DBTX, _ uuid.UUID, _ booking.StayRange) (bool, error) {
	return r.conflict, r.conflictErr
}

func (r *fakeRoomBookingRepo) MarkCleared(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.markClearedErr != nil {
		return r.markClearedErr
	}
	r.clearedIDs = append(r.clearedIDs, id)
	return nil
}

type fakeReservationRepo struct {
	created   []*reservation.Reservation
	createErr error
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, res)
	return res.ID(), nil
}

type fakeEventRepo struct {
	created         []*event.Booking
	createErr       error
	markCanceledErr error
	canceledIDs     []uuid.UUID
}

func (r *fakeEventRepo) Create(_ context.Context, _ db.DBTX, b *event.Booking) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, b)
	return b.ID(), nil
}

func (r *fakeEventRepo) MarkCanceled(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if r.markCanceledErr != nil {
		return r.markCanceledErr
	}
	r.canceledIDs = append(r.canceledIDs, id)
	return nil
}

type fakeTicketRepo struct {
	created    []*ticket.Ticket
	createErr  error
	pdfPathErr error
	pdfPaths   map[uuid.UUID]string
}

func (r *fakeTicketRepo) Create(_ context.Context, _ db.DBTX, t *ticket.Ticket) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, t)
	return t.ID(), nil
}

func (r *fakeTicketRepo) SetPDFPath(_ context.Context, _ db.DBTX, id uuid.UUID, path string) error {
	if r.pdfPathErr != nil {
		return r.pdfPathErr
	}
	if r.pdfPaths == nil {
		r.pdfPaths = map[uuid.UUID]string{}
	}
	r.pdfPaths[id] = path
	return nil
}

type fakeUserRepo struct {
	created            []*user.User
	createErr          error
	updateLastLoginErr error
	lastLoginIDs       []uuid.UUID
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	r.created = append(r.created, u)
	return u.ID(), nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, _ db.DBTX, userID uuid.UUID) error {
	if r.updateLastLoginErr != nil {
		return r.updateLastLoginErr
	}
	r.lastLoginIDs = append(r.lastLoginIDs, userID)
	return nil
}

type fakeReads struct {
	roomBooking    *booking.RoomBooking
	roomBookingErr error
	eventBooking   *event.Booking
	eventErr       error
}

func (r *fakeReads) RoomBookingByID(_ context.Context, _ uuid.UUID) (*booking.RoomBooking, error) {
	if r.roomBookingErr != nil {
		return nil, r.roomBookingErr
	}
	return r.roomBooking, nil
}

func (r *fakeReads) EventBookingByID(_ context.Context, _ uuid.UUID) (*event.Booking, error) {
	if r.eventErr != nil {
		return nil, r.eventErr
	}
	return r.eventBooking, nil
}

type fakePublisher struct {
	events []commands.BookingCreatedEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event commands.BookingCreatedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}
