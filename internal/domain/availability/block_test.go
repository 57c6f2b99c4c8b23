//go:build unit

package availability_test

import (
	"testing"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*builder.BlockBuilder)
		errIs  error
	}{
		{name: "valid block", mutate: func(*builder.BlockBuilder) {}},
		{name: "end of day bound", mutate: func(b *builder.BlockBuilder) { b.WithWindow("20:00", "24:00") }},
		{name: "empty window", mutate: func(b *builder.BlockBuilder) { b.WithWindow("10:00", "10:00") }, errIs: availability.ErrInvalidBlockWindow},
		{name: "reversed window", mutate: func(b *builder.BlockBuilder) { b.WithWindow("12:00", "10:00") }, errIs: availability.ErrInvalidBlockWindow},
		{name: "zero capacity", mutate: func(b *builder.BlockBuilder) { b.WithCapacity(0) }, errIs: availability.ErrInvalidCapacity},
		{name: "unknown source", mutate: func(b *builder.BlockBuilder) { b.Source = "imported" }, errIs: availability.ErrInvalidSource},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBlockBuilder()
			tc.mutate(b)

			block, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, block)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, block.ID())
			assert.Equal(t, b.Capacity, block.Capacity())
		})
	}
}

func TestBlock_AppliesTo(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	unassigned := builder.NewBlockBuilder().MustBuildDomain()
	alices := builder.NewBlockBuilder().WithStaff(alice).MustBuildDomain()

	assert.True(t, unassigned.AppliesTo(nil))
	assert.True(t, unassigned.AppliesTo(&alice))
	assert.True(t, alices.AppliesTo(nil))
	assert.True(t, alices.AppliesTo(&alice))
	assert.False(t, alices.AppliesTo(&bob))
}

func TestBlock_EffectiveCapacity(t *testing.T) {
	stored := availability.ReconstructBlock(uuid.New(), uuid.New(), nil, civil.NewDate(2025, 6, 2),
		civil.MustTimeOfDay("09:00"), civil.MustTimeOfDay("10:00"), 0, availability.SourceManual, builder.NewBlockBuilder().Now)

	assert.Equal(t, 1, stored.EffectiveCapacity())
	assert.Equal(t, 3, builder.NewBlockBuilder().WithCapacity(3).MustBuildDomain().EffectiveCapacity())
}

func TestBlock_Key(t *testing.T) {
	businessID, staffID := uuid.New(), uuid.New()
	first := builder.NewBlockBuilder().WithBusiness(businessID).WithStaff(staffID).MustBuildDomain()
	second := builder.NewBlockBuilder().WithBusiness(businessID).WithStaff(staffID).WithCapacity(4).MustBuildDomain()
	unassigned := builder.NewBlockBuilder().WithBusiness(businessID).MustBuildDomain()

	assert.Equal(t, first.Key().String(), second.Key().String(), "capacity is not part of the key")
	assert.NotEqual(t, first.Key().String(), unassigned.Key().String())
	assert.Contains(t, unassigned.Key().String(), "/any/2025-06-02/09:00-17:00")
}
