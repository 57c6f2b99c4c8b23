//go:build unit || e2e

package builder

import (
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	reqdto "appointment-engine/internal/handler/dto/request"
	"appointment-engine/internal/infra/repository/converter"
	sqlc "appointment-engine/internal/infra/sqlc/generated"
	"appointment-engine/internal/pkg/pgconv"
	"appointment-engine/internal/usecase/commands"
	"appointment-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockBuilder struct {
	BusinessID uuid.UUID
	StaffID    *uuid.UUID
	Date       civil.Date
	Start      string
	End        string
	Capacity   int
	Source     availability.Source
	Now        time.Time
}

// NewBlockBuilder starts from an unassigned 09:00-17:00 block on Monday 2025-06-02.
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{
		BusinessID: uuid.New(),
		Date:       civil.NewDate(2025, time.June, 2),
		Start:      "09:00",
		End:        "17:00",
		Capacity:   1,
		Source:     availability.SourceManual,
		Now:        time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BlockBuilder) With(mutate func(*BlockBuilder)) *BlockBuilder {
	mutate(b)
	return b
}

func (b *BlockBuilder) WithBusiness(id uuid.UUID) *BlockBuilder {
	b.BusinessID = id
	return b
}

func (b *BlockBuilder) WithStaff(id uuid.UUID) *BlockBuilder {
	b.StaffID = &id
	return b
}

func (b *BlockBuilder) WithDate(d civil.Date) *BlockBuilder {
	b.Date = d
	return b
}

func (b *BlockBuilder) WithWindow(start, end string) *BlockBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *BlockBuilder) WithCapacity(capacity int) *BlockBuilder {
	b.Capacity = capacity
	return b
}

// Build methods
func (b *BlockBuilder) BuildDomain() (*availability.Block, error) {
	return availability.NewBlock(availability.BlockParams{
		BusinessID: b.BusinessID,
		StaffID:    b.StaffID,
		Date:       b.Date,
		Start:      civil.MustTimeOfDay(b.Start),
		End:        civil.MustTimeOfDay(b.End),
		Capacity:   b.Capacity,
		Source:     b.Source,
	}, b.Now)
}

func (b *BlockBuilder) MustBuildDomain() *availability.Block {
	block, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return block
}

func (b *BlockBuilder) BuildInput() commands.CreateBlockInput {
	return commands.CreateBlockInput{
		StaffID:  b.StaffID,
		Date:     b.Date,
		Start:    civil.MustTimeOfDay(b.Start),
		End:      civil.MustTimeOfDay(b.End),
		Capacity: b.Capacity,
	}
}

func (b *BlockBuilder) BuildCreateRequestDTO() reqdto.CreateBlockRequest {
	capacity := b.Capacity
	return reqdto.CreateBlockRequest{
		StaffID:  b.StaffID,
		Date:     b.Date.String(),
		Start:    b.Start,
		End:      b.End,
		Capacity: &capacity,
	}
}

func (b *BlockBuilder) BuildInfra() sqlc.AvailabilityBlocks {
	return sqlc.AvailabilityBlocks{
		ID:         uuid.New(),
		BusinessID: b.BusinessID,
		StaffID:    pgconv.UUIDPtrToPgtype(b.StaffID),
		Date:       converter.DateToPgtype(b.Date),
		StartTime:  converter.TimeOfDayToPgtype(civil.MustTimeOfDay(b.Start)),
		EndTime:    converter.TimeOfDayToPgtype(civil.MustTimeOfDay(b.End)),
		Capacity:   int32(b.Capacity),
		Source:     b.Source.String(),
		CreatedAt:  pgconv.TimeToPgtype(b.Now),
	}
}

func (b *BlockBuilder) BuildView() *queries.BlockView {
	return queries.NewBlockView(b.MustBuildDomain())
}
