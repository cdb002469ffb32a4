package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/repository"
	"github.com/linyuchen/gantry/internal/tracking"
)

type operationService struct {
	records repository.OperationRepo
	groups  repository.GroupStateRepo
}

func NewOperationService(records repository.OperationRepo, groups repository.GroupStateRepo) OperationService {
	return &operationService{records: records, groups: groups}
}

func (s *operationService) ListByProject(ctx context.Context, projectID string) ([]domain.OperationRecord, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := []domain.OperationRecord{}
	for _, rec := range records {
		if rec.ProjectID == projectID {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (s *operationService) Grouped(ctx context.Context, projectID string, today time.Time) ([]OperationGroup, error) {
	records, err := s.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	state, err := s.groups.Load(ctx)
	if err != nil {
		return nil, err
	}

	buckets := map[string][]OperationView{}
	for _, rec := range records {
		stage := rec.Category
		if !domain.IsKnownStage(stage) {
			stage = domain.UncategorizedStage
		}
		buckets[stage] = append(buckets[stage], derivedView(rec, today))
	}

	groups := make([]OperationGroup, 0, len(domain.OperationStages)+1)
	for _, stage := range domain.OperationStages {
		groups = append(groups, OperationGroup{
			Stage:    stage,
			Expanded: expanded(state, stage),
			Records:  buckets[stage],
		})
	}
	if rows, ok := buckets[domain.UncategorizedStage]; ok {
		groups = append(groups, OperationGroup{
			Stage:    domain.UncategorizedStage,
			Expanded: expanded(state, domain.UncategorizedStage),
			Records:  rows,
		})
	}
	return groups, nil
}

// expanded defaults a stage with no recorded state to open.
func expanded(state map[string]bool, stage string) bool {
	open, ok := state[stage]
	if !ok {
		return true
	}
	return open
}

func derivedView(rec domain.OperationRecord, today time.Time) OperationView {
	variance := tracking.Variance(rec.ScheduledEndDate, rec.ActualEndDate)
	return OperationView{
		Record:            rec,
		ScheduledDuration: tracking.Duration(rec.ScheduledStartDate, rec.ScheduledEndDate),
		ActualDuration:    tracking.Duration(rec.ActualStartDate, rec.ActualEndDate),
		Variance:          variance,
		Tier:              tracking.Classify(variance, tracking.SchemeThreeTier),
		Progress:          tracking.ItemProgress(rec.ActualStartDate, rec.ActualEndDate, rec.ScheduledEndDate, today),
	}
}

func (s *operationService) Add(ctx context.Context, projectID, category, item string) (*domain.OperationRecord, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	rec := domain.OperationRecord{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Category:  category,
		Item:      item,
	}
	records = append(records, rec)
	if err := s.records.Save(ctx, records); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *operationService) UpdateField(ctx context.Context, recordID, field, value string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if err := applyOperationField(&records[i], field, value); err != nil {
			return err
		}
		return s.records.Save(ctx, records)
	}
	return fmt.Errorf("operation record %q: %w", recordID, ErrNotFound)
}

func (s *operationService) Delete(ctx context.Context, recordID string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}
	kept := records[:0:0]
	found := false
	for _, rec := range records {
		if rec.ID == recordID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return fmt.Errorf("operation record %q: %w", recordID, ErrNotFound)
	}
	return s.records.Save(ctx, kept)
}

func (s *operationService) ToggleGroup(ctx context.Context, stage string) (bool, error) {
	state, err := s.groups.Load(ctx)
	if err != nil {
		return false, err
	}
	next := !expanded(state, stage)
	state[stage] = next
	if err := s.groups.Save(ctx, state); err != nil {
		return false, err
	}
	return next, nil
}

func (s *operationService) ProjectProgress(ctx context.Context, projectID string, today time.Time) (int, error) {
	records, err := s.ListByProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return tracking.ProjectProgress(records, today), nil
}

func applyOperationField(rec *domain.OperationRecord, field, value string) error {
	switch field {
	case "category":
		rec.Category = value
	case "item":
		rec.Item = value
	case "scheduledStartDate":
		rec.ScheduledStartDate = value
	case "scheduledEndDate":
		rec.ScheduledEndDate = value
	case "actualStartDate":
		rec.ActualStartDate = value
	case "actualEndDate":
		rec.ActualEndDate = value
	case "remarks":
		rec.Remarks = value
	default:
		return fmt.Errorf("field %q is not writable", field)
	}
	return nil
}
