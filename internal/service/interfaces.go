// Package service implements the dataset operations behind the CLI and TUI.
// Services load a whole collection from the repository, apply one change,
// and save the whole collection back; there is no incremental persistence.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/procurement"
	"github.com/linyuchen/gantry/internal/tracking"
)

// ErrNotFound is wrapped by services when an id does not resolve.
var ErrNotFound = fmt.Errorf("not found")

// ErrPermissionDenied is wrapped when the acting role may not perform an
// operation or write a field.
var ErrPermissionDenied = fmt.Errorf("permission denied")

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, name string) (*domain.Project, error)
	Rename(ctx context.Context, id, name string) error
	// Delete removes the project and every procurement, operation, and
	// quality record that references it.
	Delete(ctx context.Context, id string) error
}

// ProcurementView is a record with its derived reporting columns.
type ProcurementView struct {
	Record          domain.ProcurementRecord
	RequestVariance *int
	RequestTier     tracking.Tier
	SignOffVariance *int
	SignOffTier     tracking.Tier
}

// ProcurementSummary is the dashboard header of the procurement table.
type ProcurementSummary struct {
	Total               int
	ContractorConfirmed int
	SevereDelays        int
	DueThisWeek         int
}

type ProcurementService interface {
	ListByProject(ctx context.Context, projectID string) ([]ProcurementView, error)
	Add(ctx context.Context, actor *domain.UserProfile, projectID string, schema domain.SchemaVersion) (*domain.ProcurementRecord, error)
	UpdateField(ctx context.Context, actor *domain.UserProfile, recordID string, field procurement.Field, value string) error
	Delete(ctx context.Context, actor *domain.UserProfile, recordID string) error
	Summary(ctx context.Context, projectID string, today time.Time) (*ProcurementSummary, error)
}

// OperationView is a record with its derived schedule columns.
type OperationView struct {
	Record            domain.OperationRecord
	ScheduledDuration *int
	ActualDuration    *int
	Variance          *int
	Tier              tracking.Tier
	Progress          int
}

// OperationGroup is one collapsible stage bucket of the operations table.
type OperationGroup struct {
	Stage    string
	Expanded bool
	Records  []OperationView
}

type OperationService interface {
	ListByProject(ctx context.Context, projectID string) ([]domain.OperationRecord, error)
	// Grouped returns the project's records bucketed by the nine fixed
	// stages plus the uncategorized bucket, in fixed stage order. Empty
	// groups are included so every stage header renders.
	Grouped(ctx context.Context, projectID string, today time.Time) ([]OperationGroup, error)
	Add(ctx context.Context, projectID, category, item string) (*domain.OperationRecord, error)
	UpdateField(ctx context.Context, recordID, field, value string) error
	Delete(ctx context.Context, recordID string) error
	// ToggleGroup flips the expand/collapse state of a stage and returns
	// the new state. State is keyed by stage name, not by project.
	ToggleGroup(ctx context.Context, stage string) (bool, error)
	ProjectProgress(ctx context.Context, projectID string, today time.Time) (int, error)
}

type QualityService interface {
	// EnsureSeeded creates the twelve fixed plan rows for a project that
	// has none. Safe to call on every view; never duplicates.
	EnsureSeeded(ctx context.Context, projectID string) error
	ListByProject(ctx context.Context, projectID string) ([]domain.QualityRecord, error)
	// UpdateField writes one of the date fields or the owner. The plan
	// name is immutable after seeding.
	UpdateField(ctx context.Context, recordID, field, value string) error
}
