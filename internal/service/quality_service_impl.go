package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/repository"
)

type qualityService struct {
	records repository.QualityRepo
}

func NewQualityService(records repository.QualityRepo) QualityService {
	return &qualityService{records: records}
}

// EnsureSeeded creates one row per fixed plan for a project with no quality
// records. A project with any existing rows is left untouched, so re-running
// on every view never duplicates.
func (s *qualityService) EnsureSeeded(ctx context.Context, projectID string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if rec.ProjectID == projectID {
			return nil
		}
	}
	for _, plan := range domain.QualityPlans {
		records = append(records, domain.QualityRecord{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			PlanName:  plan,
		})
	}
	return s.records.Save(ctx, records)
}

// ListByProject returns the project's rows ordered by the fixed plan list.
// Rows with an unknown plan name sort last in their stored order.
func (s *qualityService) ListByProject(ctx context.Context, projectID string) ([]domain.QualityRecord, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []domain.QualityRecord{}
	for _, rec := range records {
		if rec.ProjectID == projectID {
			filtered = append(filtered, rec)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return planRank(filtered[i].PlanName) < planRank(filtered[j].PlanName)
	})
	return filtered, nil
}

func planRank(plan string) int {
	for i, name := range domain.QualityPlans {
		if name == plan {
			return i
		}
	}
	return len(domain.QualityPlans)
}

func (s *qualityService) UpdateField(ctx context.Context, recordID, field, value string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		switch field {
		case "scheduledSubmissionDate":
			records[i].ScheduledSubmissionDate = value
		case "submissionDate":
			records[i].SubmissionDate = value
		case "reviewDate":
			records[i].ReviewDate = value
		case "approvalDate":
			records[i].ApprovalDate = value
		case "owner":
			records[i].Owner = value
		case "planName":
			return fmt.Errorf("plan name is immutable")
		default:
			return fmt.Errorf("field %q is not writable", field)
		}
		return s.records.Save(ctx, records)
	}
	return fmt.Errorf("quality record %q: %w", recordID, ErrNotFound)
}
