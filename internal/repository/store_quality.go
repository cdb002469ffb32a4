package repository

import (
	"context"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/store"
)

type storeQualityRepo struct {
	store *store.Store
}

func NewQualityRepo(st *store.Store) QualityRepo {
	return &storeQualityRepo{store: st}
}

func (r *storeQualityRepo) Load(ctx context.Context) ([]domain.QualityRecord, error) {
	var records []domain.QualityRecord
	ok, err := loadDoc(ctx, r.store, KeyQuality, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.QualityRecord{}, nil
	}
	for i := range records {
		if records[i].ProjectID == "" {
			records[i].ProjectID = DefaultProjectID
		}
	}
	return records, nil
}

func (r *storeQualityRepo) Save(ctx context.Context, records []domain.QualityRecord) error {
	if records == nil {
		records = []domain.QualityRecord{}
	}
	return saveDoc(ctx, r.store, KeyQuality, records)
}
