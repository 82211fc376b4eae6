package booking

import (
	"errors"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrInvertedStayRange = errors.New("check-in must not be after check-out")
)

// StayRange is a closed date interval [checkIn, checkOut]. Both ends are
// inclusive: a booking ending the day another begins conflicts with it.
// A single-day stay (checkIn == checkOut) is valid.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	checkIn = truncateToDay(checkIn)
	checkOut = truncateToDay(checkOut)
	if checkIn.After(checkOut) {
		return StayRange{}, ErrInvertedStayRange
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

// ParseStayRange builds a StayRange from YYYY-MM-DD strings. Malformed input
// fails before any persistence or conflict check is reached.
func ParseStayRange(checkIn, checkOut string) (StayRange, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return StayRange{}, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return StayRange{}, err
	}
	return NewStayRange(in, out)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func (r StayRange) CheckIn() time.Time  { return r.checkIn }
func (r StayRange) CheckOut() time.Time { return r.checkOut }

// Overlaps reports whether two stay ranges share at least one day:
// a.checkIn <= b.checkOut AND a.checkOut >= b.checkIn.
// The same predicate backs the room-search view and booking validation;
// the SQL variant lives in internal/infra and must stay in step with this.
func (r StayRange) Overlaps(other StayRange) bool {
	return !r.checkIn.After(other.checkOut) && !r.checkOut.Before(other.checkIn)
}

// Contains reports whether the given date falls within the range, inclusive
// on both ends. Used for point-in-time occupancy queries.
func (r StayRange) Contains(date time.Time) bool {
	date = truncateToDay(date)
	return !date.Before(r.checkIn) && !date.After(r.checkOut)
}

func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Guest carries the customer contact details captured on a room booking.
type Guest struct {
	name     string
	email    string
	phone    string
	age      int
	idNumber string
}

var (
	ErrMissingGuestName  = errors.New("customer name is required")
	ErrMissingGuestEmail = errors.New("customer email is required")
	ErrMissingGuestPhone = errors.New("customer phone is required")
	ErrInvalidGuestAge   = errors.New("customer age must be positive")
	ErrMissingIDNumber   = errors.New("customer id number is required")
)

func NewGuest(name, email, phone string, age int, idNumber string) (Guest, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	idNumber = strings.TrimSpace(idNumber)

	switch {
	case name == "":
		return Guest{}, ErrMissingGuestName
	case email == "":
		return Guest{}, ErrMissingGuestEmail
	case phone == "":
		return Guest{}, ErrMissingGuestPhone
	case age <= 0:
		return Guest{}, ErrInvalidGuestAge
	case idNumber == "":
		return Guest{}, ErrMissingIDNumber
	}

	return Guest{name: name, email: email, phone: phone, age: age, idNumber: idNumber}, nil
}

// ReconstructGuest rehydrates a Guest from storage; the stored values were
// validated on the way in.
func ReconstructGuest(name, email, phone string, age int, idNumber string) Guest {
	return Guest{name: name, email: email, phone: phone, age: age, idNumber: idNumber}
}

func (g Guest) Name() string     { return g.name }
func (g Guest) Email() string    { return g.email }
func (g Guest) Phone() string    { return g.phone }
func (g Guest) Age() int         { return g.age }
func (g Guest) IDNumber() string { return g.idNumber }
