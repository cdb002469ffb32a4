package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/procurement"
	"github.com/linyuchen/gantry/internal/repository"
	"github.com/linyuchen/gantry/internal/tracking"
)

type procurementService struct {
	records  repository.ProcurementRepo
	projects repository.ProjectRepo
}

func NewProcurementService(records repository.ProcurementRepo, projects repository.ProjectRepo) ProcurementService {
	return &procurementService{records: records, projects: projects}
}

func (s *procurementService) ListByProject(ctx context.Context, projectID string) ([]ProcurementView, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	views := []ProcurementView{}
	for _, rec := range records {
		if rec.ProjectID != projectID {
			continue
		}
		scheme := procurement.Scheme(rec.Schema)
		reqVar := tracking.RequestVariance(&rec)
		var secondary *int
		if rec.Schema == domain.SchemaV1 {
			secondary = tracking.ResubmissionVariance(&rec)
		} else {
			secondary = tracking.SignOffVariance(&rec)
		}
		views = append(views, ProcurementView{
			Record:          rec,
			RequestVariance: reqVar,
			RequestTier:     tracking.Classify(reqVar, scheme),
			SignOffVariance: secondary,
			SignOffTier:     tracking.Classify(secondary, scheme),
		})
	}
	return views, nil
}

func (s *procurementService) Add(ctx context.Context, actor *domain.UserProfile, projectID string, schema domain.SchemaVersion) (*domain.ProcurementRecord, error) {
	if !procurement.CanManageRows(actor.Role) {
		return nil, fmt.Errorf("role %s may not add procurement rows: %w", actor.Role, ErrPermissionDenied)
	}
	if schema == "" {
		schema = domain.SchemaV2
	}

	projectName := ""
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == projectID {
			projectName = p.Name
			break
		}
	}
	if projectName == "" {
		return nil, fmt.Errorf("project %q: %w", projectID, ErrNotFound)
	}

	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	rec := domain.ProcurementRecord{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Schema:      schema,
		ProjectName: projectName,
	}
	records = append(records, rec)
	if err := s.records.Save(ctx, records); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *procurementService) UpdateField(ctx context.Context, actor *domain.UserProfile, recordID string, field procurement.Field, value string) error {
	records, err := s.records.Load(ctx)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].ID != recordID {
			continue
		}
		if !procurement.Editable(records[i].Schema, actor.Role, field) {
			return fmt.Errorf("role %s may not edit %s: %w", actor.Role, field, ErrPermissionDenied)
		}
		if err := applyProcurementField(&records[i], field, value); err != nil {
			return err
		}
		return s.records.Save(ctx, records)
	}
	return fmt.Errorf("procurement record %q: %w", recordID, ErrNotFound)
}

func (s *procurementService) Delete(ctx context.Context, actor *domain.UserProfile, recordID string) error {
	if !procurement.CanManageRows(actor.Role) {
		return fmt.Errorf("role %s may not delete procurement rows: %w", actor.Role, ErrPermissionDenied)
	}
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
		return fmt.Errorf("procurement record %q: %w", recordID, ErrNotFound)
	}
	return s.records.Save(ctx, kept)
}

// Summary computes the dashboard counters over one project's rows.
func (s *procurementService) Summary(ctx context.Context, projectID string, today time.Time) (*ProcurementSummary, error) {
	records, err := s.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	today = tracking.Midnight(today)
	weekAhead := today.AddDate(0, 0, 7)

	summary := &ProcurementSummary{}
	for _, rec := range records {
		if rec.ProjectID != projectID {
			continue
		}
		summary.Total++
		if rec.ContractorConfirmDate != "" {
			summary.ContractorConfirmed++
		}
		if v := tracking.RequestVariance(&rec); v != nil && *v < -tracking.SevereThresholdDays {
			summary.SevereDelays++
		}
		if rec.ActualRequestDate == "" {
			if due, ok := tracking.ParseDate(rec.ScheduledRequestDate); ok {
				if !due.Before(today) && !due.After(weekAhead) {
					summary.DueThisWeek++
				}
			}
		}
	}
	return summary, nil
}

func applyProcurementField(rec *domain.ProcurementRecord, field procurement.Field, value string) error {
	switch field {
	case procurement.FieldEngineeringItem:
		rec.EngineeringItem = value
	case procurement.FieldScheduledRequestDate:
		rec.ScheduledRequestDate = value
	case procurement.FieldActualRequestDate:
		rec.ActualRequestDate = value
	case procurement.FieldSiteOrganizer:
		rec.SiteOrganizer = value
	case procurement.FieldProcurementOrganizer:
		rec.ProcurementOrganizer = value
	case procurement.FieldSignOffDate:
		rec.SignOffDate = value
	case procurement.FieldControlledDuration:
		rec.ControlledDuration = value
	case procurement.FieldContractorConfirm:
		rec.ContractorConfirmDate = value
	case procurement.FieldContractorName:
		rec.ContractorName = value
	case procurement.FieldReturnDate:
		rec.ReturnDate = value
	case procurement.FieldResubmissionDate:
		rec.ResubmissionDate = value
	case procurement.FieldRemarks:
		rec.Remarks = value
	default:
		return fmt.Errorf("field %q is not writable", field)
	}
	return nil
}
