package readstore

import (
	"context"

	"appointment-engine/internal/infra"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

// IdempotencyLookup reads keys inside the claiming transaction, so it takes the tx as an argument.
type IdempotencyLookup struct {
	queries IdempotencyReadQueries
}

func NewIdempotencyLookup(queries IdempotencyReadQueries) *IdempotencyLookup {
	return &IdempotencyLookup{queries: queries}
}

// Find returns expired records too; reclaiming them is the caller's decision.
func (l *IdempotencyLookup) Find(ctx context.Context, tx sqlc.DBTX, key, scope uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := l.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{Key: key, UserID: scope})
	switch {
	case pgconv.IsNoRows(err):
		return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
	case err != nil:
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return toIdempotencyRecord(row), nil
}

func toIdempotencyRecord(row sqlc.IdempotencyKeys) *shared.IdempotencyRecord {
	return &shared.IdempotencyRecord{
		Key:             row.Key,
		UserID:          row.UserID,
		Endpoint:        row.Endpoint,
		Status:          row.Status,
		RequestHash:     row.RequestHash,
		ResultBookingID: pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}
}
