package repository

import (
	"context"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/store"
)

type storeProcurementRepo struct {
	store *store.Store
}

func NewProcurementRepo(st *store.Store) ProcurementRepo {
	return &storeProcurementRepo{store: st}
}

func (r *storeProcurementRepo) Load(ctx context.Context) ([]domain.ProcurementRecord, error) {
	var records []domain.ProcurementRecord
	ok, err := loadDoc(ctx, r.store, KeyProcurement, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedProcurement(), nil
	}
	for i := range records {
		migrateProcurement(&records[i])
	}
	return records, nil
}

func (r *storeProcurementRepo) Save(ctx context.Context, records []domain.ProcurementRecord) error {
	if records == nil {
		records = []domain.ProcurementRecord{}
	}
	return saveDoc(ctx, r.store, KeyProcurement, records)
}

// migrateProcurement fills fields that older documents lack. Records written
// before project scoping existed belong to the default project, and untagged
// records are current-schema.
func migrateProcurement(rec *domain.ProcurementRecord) {
	if rec.ProjectID == "" {
		rec.ProjectID = DefaultProjectID
	}
	if rec.Schema == "" {
		rec.Schema = domain.SchemaV2
	}
}

func seedProcurement() []domain.ProcurementRecord {
	return []domain.ProcurementRecord{
		{
			ID:                   "1",
			ProjectID:            DefaultProjectID,
			Schema:               domain.SchemaV2,
			ProjectName:          "A1 Main Tower",
			EngineeringItem:      "Structural Steel Works",
			ScheduledRequestDate: "2023-10-01",
			ActualRequestDate:    "2023-10-05",
			SiteOrganizer:        "M. Wang",
			ProcurementOrganizer: "D. Lee",
			ControlledDuration:   "14",
		},
		{
			ID:                   "2",
			ProjectID:            DefaultProjectID,
			Schema:               domain.SchemaV2,
			ProjectName:          "B2 Podium",
			EngineeringItem:      "Concrete Pouring",
			ScheduledRequestDate: "2023-10-15",
			ActualRequestDate:    "2023-10-10",
			SiteOrganizer:        "M. Wang",
			ProcurementOrganizer: "C. Chen",
			ControlledDuration:   "20",
			Remarks:              "Handle with priority",
		},
	}
}
