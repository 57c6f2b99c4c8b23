package auth

import (
	"errors"

	"appointment-engine/internal/domain/user"

	"github.com/google/uuid"
)

var ErrUnauthorized = errors.New("caller does not own the target business")

// Principal is the authenticated caller as asserted by an access token.
type Principal struct {
	UserID     uuid.UUID
	BusinessID uuid.UUID
	Role       user.Role
}

// Authorize checks that p may act on businessID with at least minRole. It never touches storage.
func Authorize(p *Principal, businessID uuid.UUID, minRole user.Role) error {
	if p == nil || p.UserID == uuid.Nil || businessID == uuid.Nil {
		return ErrUnauthorized
	}
	if p.BusinessID != businessID {
		return ErrUnauthorized
	}
	if !p.Role.AtLeast(minRole) {
		return ErrUnauthorized
	}
	return nil
}
