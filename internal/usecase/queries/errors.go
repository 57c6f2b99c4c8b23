package queries

import (
	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.New("invalid cursor")

func authorize(principal *auth.Principal, businessID uuid.UUID, minRole user.Role) error {
	if err := auth.Authorize(principal, businessID, minRole); err != nil {
		return errs.Mark(err, errs.ErrUnauthorized)
	}
	return nil
}

func markReadErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
