package commands

import (
	"appointment-engine/internal/domain/auth"
	"appointment-engine/internal/domain/user"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

func authorize(principal *auth.Principal, businessID uuid.UUID, minRole user.Role) error {
	if err := auth.Authorize(principal, businessID, minRole); err != nil {
		return errs.Mark(err, errs.ErrUnauthorized)
	}
	return nil
}

// markRepoErr translates repository error kinds into the sentinels handlers understand.
func markRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
