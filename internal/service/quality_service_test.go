package service

import (
	"context"
	"testing"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQualityService(t *testing.T) (QualityService, *repos) {
	t.Helper()
	r := newRepos(t)
	return NewQualityService(r.quality), r
}

func TestQualityService_SeedsTwelvePlansInOrder(t *testing.T) {
	svc, _ := newQualityService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, records, len(domain.QualityPlans))
	for i, rec := range records {
		assert.Equal(t, domain.QualityPlans[i], rec.PlanName)
		assert.Equal(t, "p1", rec.ProjectID)
		assert.NotEmpty(t, rec.ID)
	}
}

func TestQualityService_SeedingIsIdempotent(t *testing.T) {
	svc, _ := newQualityService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))

	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, records, len(domain.QualityPlans))
}

func TestQualityService_SeedingIsPerProject(t *testing.T) {
	svc, _ := newQualityService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	require.NoError(t, svc.EnsureSeeded(ctx, "p2"))

	p1, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	p2, err := svc.ListByProject(ctx, "p2")
	require.NoError(t, err)
	assert.Len(t, p1, len(domain.QualityPlans))
	assert.Len(t, p2, len(domain.QualityPlans))
}

func TestQualityService_UpdateField(t *testing.T) {
	svc, _ := newQualityService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	target := records[0]

	require.NoError(t, svc.UpdateField(ctx, target.ID, "submissionDate", "2024-03-01"))
	require.NoError(t, svc.UpdateField(ctx, target.ID, "owner", "Site QA"))

	records, err = svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", records[0].SubmissionDate)
	assert.Equal(t, "Site QA", records[0].Owner)
}

func TestQualityService_PlanNameImmutable(t *testing.T) {
	svc, _ := newQualityService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureSeeded(ctx, "p1"))
	records, err := svc.ListByProject(ctx, "p1")
	require.NoError(t, err)

	err = svc.UpdateField(ctx, records[0].ID, "planName", "Renamed Plan")
	assert.Error(t, err)

	records, err = svc.ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.QualityPlans[0], records[0].PlanName)
}

func TestQualityService_UpdateFieldUnknownRecord(t *testing.T) {
	svc, _ := newQualityService(t)
	err := svc.UpdateField(context.Background(), "nope", "owner", "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
