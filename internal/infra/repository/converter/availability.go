package converter

import (
	"appointment-engine/internal/domain/availability"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
)

func BlockToCreateParams(b *availability.Block) sqlc.CreateBlockParams {
	return sqlc.CreateBlockParams{
		ID:         b.ID(),
		BusinessID: b.BusinessID(),
		StaffID:    pgconv.UUIDPtrToPgtype(b.StaffID()),
		Date:       DateToPgtype(b.Date()),
		StartTime:  TimeOfDayToPgtype(b.Start()),
		EndTime:    TimeOfDayToPgtype(b.End()),
		Capacity:   int32(b.Capacity()),
		Source:     b.Source().String(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BlockToInsertIfAbsentParams(b *availability.Block) sqlc.InsertBlockIfAbsentParams {
	return sqlc.InsertBlockIfAbsentParams(BlockToCreateParams(b))
}

func BlockFromRow(row sqlc.AvailabilityBlocks) *availability.Block {
	return availability.ReconstructBlock(
		row.ID,
		row.BusinessID,
		pgconv.UUIDPtrFromPgtype(row.StaffID),
		DateFromPgtype(row.Date),
		TimeOfDayFromPgtype(row.StartTime),
		TimeOfDayFromPgtype(row.EndTime),
		int(row.Capacity),
		availability.Source(row.Source),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func BlocksFromRows(rows []sqlc.AvailabilityBlocks) []*availability.Block {
	blocks := make([]*availability.Block, len(rows))
	for i, row := range rows {
		blocks[i] = BlockFromRow(row)
	}
	return blocks
}
