package infra

// ActiveStayOverlap is the single closed-interval overlap predicate backing
// both the room-search view and booking-creation validation. Bind @check_in
// and @check_out via pgx.NamedArgs. Both interval ends are inclusive: a
// booking ending the day another begins conflicts. Cleared bookings never
// conflict, so a room can be rebooked for overlapping dates once cleared.
const ActiveStayOverlap = `rb.check_in <= @check_out AND rb.check_out >= @check_in AND rb.is_cleared = FALSE`
