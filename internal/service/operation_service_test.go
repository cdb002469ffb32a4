package service

import (
	"context"
	"testing"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/testutil"
	"github.com/linyuchen/gantry/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperationService(t *testing.T) (OperationService, *repos) {
	t.Helper()
	r := newRepos(t)
	return NewOperationService(r.operations, r.groups), r
}

func TestOperationService_AddAndList(t *testing.T) {
	svc, _ := newOperationService(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, "p1", "Design", "Basic Design")
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "p1", rec.ProjectID)

	_, err = svc.Add(ctx, "p2", "Design", "Other Project Item")
	require.NoError(t, err)

	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Basic Design", records[0].Item)
}

func TestOperationService_GroupedCoversAllStages(t *testing.T) {
	svc, r := newOperationService(t)
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	require.NoError(t, r.operations.Save(ctx, []domain.OperationRecord{
		testutil.NewTestOperationRecord("p1", "Design", "Basic Design"),
		testutil.NewTestOperationRecord("p1", "Some Custom Phase", "Odd Item"),
	}))

	groups, err := svc.Grouped(ctx, "p1", today)
	require.NoError(t, err)
	// Nine fixed stages plus the uncategorized bucket for the custom phase.
	require.Len(t, groups, len(domain.OperationStages)+1)
	for i, stage := range domain.OperationStages {
		assert.Equal(t, stage, groups[i].Stage)
		assert.True(t, groups[i].Expanded, "stages default to open")
	}
	last := groups[len(groups)-1]
	assert.Equal(t, domain.UncategorizedStage, last.Stage)
	require.Len(t, last.Records, 1)
	assert.Equal(t, "Odd Item", last.Records[0].Record.Item)
}

func TestOperationService_GroupedOmitsEmptyUncategorized(t *testing.T) {
	svc, r := newOperationService(t)
	ctx := context.Background()

	require.NoError(t, r.operations.Save(ctx, []domain.OperationRecord{
		testutil.NewTestOperationRecord("p1", "Design", "Basic Design"),
	}))

	groups, err := svc.Grouped(ctx, "p1", time.Now())
	require.NoError(t, err)
	assert.Len(t, groups, len(domain.OperationStages))
}

func TestOperationService_GroupedDerivesColumns(t *testing.T) {
	svc, r := newOperationService(t)
	ctx := context.Background()
	today := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)

	rec := testutil.NewTestOperationRecord("p1", "Design", "Basic Design",
		testutil.WithSchedule("2024-01-01", "2024-01-10"),
		testutil.WithActuals("2024-01-01", "2024-01-25"))
	require.NoError(t, r.operations.Save(ctx, []domain.OperationRecord{rec}))

	groups, err := svc.Grouped(ctx, "p1", today)
	require.NoError(t, err)
	require.NotEmpty(t, groups[0].Records)
	view := groups[0].Records[0]

	require.NotNil(t, view.ScheduledDuration)
	assert.Equal(t, 10, *view.ScheduledDuration)
	require.NotNil(t, view.ActualDuration)
	assert.Equal(t, 25, *view.ActualDuration)
	require.NotNil(t, view.Variance)
	assert.Equal(t, -15, *view.Variance)
	assert.Equal(t, tracking.TierWarning, view.Tier)
	assert.Equal(t, 100, view.Progress, "finished item reports full progress")
}

func TestOperationService_UpdateField(t *testing.T) {
	svc, _ := newOperationService(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, "p1", "Design", "Basic Design")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateField(ctx, rec.ID, "scheduledStartDate", "2024-01-01"))
	require.NoError(t, svc.UpdateField(ctx, rec.ID, "remarks", "slipped a week"))

	err = svc.UpdateField(ctx, rec.ID, "bogusField", "x")
	assert.Error(t, err)

	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2024-01-01", records[0].ScheduledStartDate)
	assert.Equal(t, "slipped a week", records[0].Remarks)
}

func TestOperationService_Delete(t *testing.T) {
	svc, _ := newOperationService(t)
	ctx := context.Background()

	rec, err := svc.Add(ctx, "p1", "Design", "Basic Design")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, rec.ID))

	err = svc.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOperationService_ToggleGroupPersists(t *testing.T) {
	svc, r := newOperationService(t)
	ctx := context.Background()

	open, err := svc.ToggleGroup(ctx, "Design")
	require.NoError(t, err)
	assert.False(t, open, "first toggle collapses the default-open group")

	open, err = svc.ToggleGroup(ctx, "Design")
	require.NoError(t, err)
	assert.True(t, open)

	// State survives a fresh service over the same store.
	_, err = svc.ToggleGroup(ctx, "Structure")
	require.NoError(t, err)
	fresh := NewOperationService(r.operations, r.groups)
	groups, err := fresh.Grouped(ctx, "p1", time.Now())
	require.NoError(t, err)
	for _, g := range groups {
		if g.Stage == "Structure" {
			assert.False(t, g.Expanded)
		}
		if g.Stage == "Design" {
			assert.True(t, g.Expanded)
		}
	}
}

func TestOperationService_ProjectProgress(t *testing.T) {
	svc, r := newOperationService(t)
	ctx := context.Background()
	today := time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local)

	require.NoError(t, r.operations.Save(ctx, []domain.OperationRecord{
		testutil.NewTestOperationRecord("p1", "Design", "Basic Design",
			testutil.WithSchedule("2024-01-01", "2024-01-31"),
			testutil.WithActuals("2024-01-01", "")),
	}))

	pct, err := svc.ProjectProgress(ctx, "p1", today)
	require.NoError(t, err)
	assert.Equal(t, 99, pct, "no actual completion caps progress at 99")
}
