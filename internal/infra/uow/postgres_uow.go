package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"acacia-booking/internal/domain/booking"
	"acacia-booking/internal/domain/event"
	"acacia-booking/internal/infra"
	"acacia-booking/internal/infra/db"
	"acacia-booking/internal/infra/repository"
	"acacia-booking/internal/pkg/errs"
	"acacia-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	roomRepo         shared.RoomRepository
	roomBookingRepo  shared.RoomBookingRepository
	reservationRepo  shared.ReservationRepository
	eventBookingRepo shared.EventBookingRepository
	ticketRepo       shared.TicketRepository
	userRepo         shared.UserRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository()
	}
	return t.roomRepo
}

func (t *pgTx) RoomBookings() shared.RoomBookingRepository {
	if t.roomBookingRepo == nil {
		t.roomBookingRepo = repository.NewRoomBookingRepository()
	}
	return t.roomBookingRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) EventBookings() shared.EventBookingRepository {
	if t.eventBookingRepo == nil {
		t.eventBookingRepo = repository.NewEventBookingRepository()
	}
	return t.eventBookingRepo
}

func (t *pgTx) Tickets() shared.TicketRepository {
	if t.ticketRepo == nil {
		t.ticketRepo = repository.NewTicketRepository()
	}
	return t.ticketRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository()
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) RoomBookingByID(ctx context.Context, id uuid.UUID) (*booking.RoomBooking, error) {
	const query = `
		SELECT id, user_id, room_id, customer_name, email, phone, age, id_number,
		       party_size, check_in, check_out, message, is_cleared, created_at
		FROM room_bookings
		WHERE id = $1`

	var (
		bookingID, userID, roomID             uuid.UUID
		name, email, phone, idNumber, message string
		age, partySize                        int
		checkIn, checkOut, createdAt          time.Time
		isCleared                             bool
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&bookingID, &userID, &roomID, &name, &email, &phone, &age, &idNumber,
		&partySize, &checkIn, &checkOut, &message, &isCleared, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read room booking", err)
	}

	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored stay range is invalid", err)
	}
	guest := booking.ReconstructGuest(name, email, phone, age, idNumber)

	return booking.ReconstructRoomBooking(
		bookingID, userID, roomID, guest, partySize, stay, message, isCleared, createdAt,
	), nil
}

func (r *commandReads) EventBookingByID(ctx context.Context, id uuid.UUID) (*event.Booking, error) {
	const query = `
		SELECT id, user_id, event_name, slot, customer_name, email, phone,
		       date, attendees, message, is_canceled, created_at
		FROM event_bookings
		WHERE id = $1`

	var (
		bookingID                                    uuid.UUID
		userID                                       *uuid.UUID
		eventName, slot, name, email, phone, message string
		date, createdAt                              time.Time
		attendees                                    int
		isCanceled                                   bool
	)
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&bookingID, &userID, &eventName, &slot, &name, &email, &phone,
		&date, &attendees, &message, &isCanceled, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read event booking", err)
	}

	return event.ReconstructBooking(
		bookingID, userID, eventName, slot, name, email, phone,
		date, attendees, message, isCanceled, createdAt,
	), nil
}
