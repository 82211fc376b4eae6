package shared

import (
	"acacia-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, passed explicitly into every
// operation that needs ownership or role decisions. No ambient globals.
type Principal struct {
	ID   uuid.UUID
	Role user.Role
}

func (p Principal) IsStaff() bool {
	return p.Role.IsStaff()
}
