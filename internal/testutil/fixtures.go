package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/linyuchen/gantry/internal/domain"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

func NewTestProject(name string, opts ...ProjectOption) domain.Project {
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// ProcurementRecord options
type ProcurementOption func(*domain.ProcurementRecord)

func WithSchema(schema domain.SchemaVersion) ProcurementOption {
	return func(r *domain.ProcurementRecord) {
		r.Schema = schema
	}
}

func WithRequestDates(scheduled, actual string) ProcurementOption {
	return func(r *domain.ProcurementRecord) {
		r.ScheduledRequestDate = scheduled
		r.ActualRequestDate = actual
	}
}

func WithContractorConfirmed(date string) ProcurementOption {
	return func(r *domain.ProcurementRecord) {
		r.ContractorConfirmDate = date
	}
}

func NewTestProcurementRecord(projectID, item string, opts ...ProcurementOption) domain.ProcurementRecord {
	r := domain.ProcurementRecord{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		Schema:          domain.SchemaV2,
		EngineeringItem: item,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// OperationRecord options
type OperationOption func(*domain.OperationRecord)

func WithSchedule(start, end string) OperationOption {
	return func(r *domain.OperationRecord) {
		r.ScheduledStartDate = start
		r.ScheduledEndDate = end
	}
}

func WithActuals(start, end string) OperationOption {
	return func(r *domain.OperationRecord) {
		r.ActualStartDate = start
		r.ActualEndDate = end
	}
}

func NewTestOperationRecord(projectID, category, item string, opts ...OperationOption) domain.OperationRecord {
	r := domain.OperationRecord{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Category:  category,
		Item:      item,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
