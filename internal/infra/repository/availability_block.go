package repository

import (
	"context"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/infra"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BlockWriteQueries interface {
	CreateBlock(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockParams) (uuid.UUID, error)
	InsertBlockIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBlockIfAbsentParams) (int64, error)
	DeleteBlock(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBlockParams) (int64, error)
}

type BlockRepository struct {
	queries BlockWriteQueries
	db      sqlc.DBTX
}

func NewBlockRepository(queries BlockWriteQueries, db sqlc.DBTX) *BlockRepository {
	return &BlockRepository{
		queries: queries,
		db:      db,
	}
}

// Create fails with KindDuplicateKey when the slot key is taken.
func (r *BlockRepository) Create(ctx context.Context, tx sqlc.DBTX, block *availability.Block) (uuid.UUID, error) {
	id, err := r.queries.CreateBlock(ctx, tx, converter.BlockToCreateParams(block))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create availability block", err)
	}
	return id, nil
}

// InsertIfAbsent reports whether a row was written. An existing block with the same key is left untouched.
func (r *BlockRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, block *availability.Block) (bool, error) {
	affected, err := r.queries.InsertBlockIfAbsent(ctx, tx, converter.BlockToInsertIfAbsentParams(block))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert availability block", err)
	}
	return affected == 1, nil
}

func (r *BlockRepository) Delete(ctx context.Context, tx sqlc.DBTX, businessID, blockID uuid.UUID) error {
	affected, err := r.queries.DeleteBlock(ctx, tx, sqlc.DeleteBlockParams{ID: blockID, BusinessID: businessID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete availability block", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("availability block not found", nil, infra.KindNotFound)
	}
	return nil
}
