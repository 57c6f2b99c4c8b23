//go:build unit

package availability_test

import (
	"testing"
	"time"

	"appointment-engine/internal/domain/availability"
	"appointment-engine/internal/domain/civil"
	"appointment-engine/internal/domain/schedule"
	"appointment-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var planNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type plannedBlock struct {
	Date  string
	Start string
	End   string
	Staff string
}

func summarize(blocks []*availability.Block) []plannedBlock {
	out := make([]plannedBlock, len(blocks))
	for i, b := range blocks {
		out[i] = plannedBlock{
			Date:  b.Date().String(),
			Start: b.Start().String(),
			End:   b.End().String(),
			Staff: b.StaffID().String(),
		}
	}
	return out
}

func TestPlanBlocks(t *testing.T) {
	businessID, staffID := uuid.New(), uuid.New()
	// 2025-06-02 and 2025-06-09 are Mondays
	from, to := civil.NewDate(2025, time.June, 1), civil.NewDate(2025, time.June, 14)
	opts := availability.PlanOptions{From: from, To: to, Capacity: 1, MaxDays: 366}

	t.Run("break splits every matching weekday into two blocks", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).WithStaff(staffID).
			WithBreak("12:00", "13:00").MustBuildDomain()

		plan, err := availability.PlanBlocks([]*schedule.Rule{rule}, opts, planNow)
		require.NoError(t, err)

		want := []plannedBlock{
			{Date: "2025-06-02", Start: "09:00", End: "12:00", Staff: staffID.String()},
			{Date: "2025-06-02", Start: "13:00", End: "17:00", Staff: staffID.String()},
			{Date: "2025-06-09", Start: "09:00", End: "12:00", Staff: staffID.String()},
			{Date: "2025-06-09", Start: "13:00", End: "17:00", Staff: staffID.String()},
		}
		if diff := cmp.Diff(want, summarize(plan.Blocks)); diff != "" {
			t.Errorf("planned blocks mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(t, plan.Rejected)
		for _, b := range plan.Blocks {
			assert.Equal(t, availability.SourceMaterialized, b.Source())
			assert.Equal(t, businessID, b.BusinessID())
		}
	})

	t.Run("planning twice yields the same keys", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).WithStaff(staffID).MustBuildDomain()

		first, err := availability.PlanBlocks([]*schedule.Rule{rule}, opts, planNow)
		require.NoError(t, err)
		second, err := availability.PlanBlocks([]*schedule.Rule{rule}, opts, planNow.Add(time.Hour))
		require.NoError(t, err)

		keys := func(p availability.Plan) []string {
			out := make([]string, len(p.Blocks))
			for i, b := range p.Blocks {
				out[i] = b.Key().String()
			}
			return out
		}
		assert.Equal(t, keys(first), keys(second))
	})

	t.Run("break touching the work edge rejects the empty segment", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).WithStaff(staffID).
			WithBreak("16:00", "17:00").MustBuildDomain()

		plan, err := availability.PlanBlocks([]*schedule.Rule{rule}, opts, planNow)
		require.NoError(t, err)

		assert.Len(t, plan.Blocks, 2)
		require.Len(t, plan.Rejected, 2)
		assert.Equal(t, rule.ID().String(), plan.Rejected[0].RuleID)
		assert.Equal(t, "17:00", plan.Rejected[0].Start.String())
	})

	t.Run("inactive rules are ignored", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).MustBuildDomain()
		rule.Deactivate(planNow)

		plan, err := availability.PlanBlocks([]*schedule.Rule{rule}, opts, planNow)
		require.NoError(t, err)
		assert.Empty(t, plan.Blocks)
	})

	t.Run("capacity defaults to one", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).MustBuildDomain()
		noCapacity := opts
		noCapacity.Capacity = 0

		plan, err := availability.PlanBlocks([]*schedule.Rule{rule}, noCapacity, planNow)
		require.NoError(t, err)
		require.NotEmpty(t, plan.Blocks)
		assert.Equal(t, 1, plan.Blocks[0].Capacity())
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		rule := builder.NewRuleBuilder().WithBusiness(businessID).MustBuildDomain()
		monday := civil.NewDate(2025, time.June, 2)
		single := availability.PlanOptions{From: monday, To: monday, Capacity: 1}

		plan, err := availability.PlanBlocks([]*schedule.Rule{rule}, single, planNow)
		require.NoError(t, err)
		require.Len(t, plan.Blocks, 1)
		assert.Equal(t, monday, plan.Blocks[0].Date())
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := availability.PlanBlocks(nil, availability.PlanOptions{From: to, To: from}, planNow)
		assert.ErrorIs(t, err, availability.ErrInvalidRange)
	})
}

func TestValidateRange(t *testing.T) {
	day := civil.NewDate(2025, time.January, 1)

	assert.NoError(t, availability.ValidateRange(day, day, 1))
	assert.NoError(t, availability.ValidateRange(day, day.AddDays(365), 366))
	assert.ErrorIs(t, availability.ValidateRange(day, day.AddDays(366), 366), availability.ErrInvalidRange)
	assert.ErrorIs(t, availability.ValidateRange(day, day.AddDays(-1), 0), availability.ErrInvalidRange)
	assert.ErrorIs(t, availability.ValidateRange(civil.Date{}, day, 0), availability.ErrInvalidRange)
	assert.NoError(t, availability.ValidateRange(day, day.AddDays(5000), 0), "zero disables the cap")
}

func TestOccurrencesOf(t *testing.T) {
	from, to := civil.NewDate(2025, time.June, 1), civil.NewDate(2025, time.June, 30)

	dates, err := availability.OccurrencesOf(time.Sunday, from, to)
	require.NoError(t, err)

	want := []civil.Date{
		civil.NewDate(2025, time.June, 1),
		civil.NewDate(2025, time.June, 8),
		civil.NewDate(2025, time.June, 15),
		civil.NewDate(2025, time.June, 22),
		civil.NewDate(2025, time.June, 29),
	}
	if diff := cmp.Diff(want, dates); diff != "" {
		t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
	}
}
