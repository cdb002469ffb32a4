// Package repository persists each dataset as a whole-collection JSON
// document under a fixed key in the store. Load tolerates older document
// shapes by filling missing fields with defaults; a document that fails to
// parse is logged and replaced by the dataset's seed, never surfaced as an
// error.
package repository

import (
	"context"

	"github.com/linyuchen/gantry/internal/domain"
)

// Storage keys, one per dataset. Projects are shared by the procurement and
// operations areas; quality keeps its own records under a separate key.
const (
	KeyProjects        = "projects_list"
	KeyProcurement     = "procurement_records"
	KeyOperations      = "operation_records"
	KeyQuality         = "quality_records"
	KeyOperationGroups = "operation_group_state"
)

type ProjectRepo interface {
	Load(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, projects []domain.Project) error
}

type ProcurementRepo interface {
	Load(ctx context.Context) ([]domain.ProcurementRecord, error)
	Save(ctx context.Context, records []domain.ProcurementRecord) error
}

type OperationRepo interface {
	Load(ctx context.Context) ([]domain.OperationRecord, error)
	Save(ctx context.Context, records []domain.OperationRecord) error
}

type QualityRepo interface {
	Load(ctx context.Context) ([]domain.QualityRecord, error)
	Save(ctx context.Context, records []domain.QualityRecord) error
}

// GroupStateRepo persists the expand/collapse state of the operations stage
// groups, keyed by stage name. State is global, not per project.
type GroupStateRepo interface {
	Load(ctx context.Context) (map[string]bool, error)
	Save(ctx context.Context, state map[string]bool) error
}
