package repository

import (
	"context"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/store"
)

type storeOperationRepo struct {
	store *store.Store
}

func NewOperationRepo(st *store.Store) OperationRepo {
	return &storeOperationRepo{store: st}
}

func (r *storeOperationRepo) Load(ctx context.Context) ([]domain.OperationRecord, error) {
	var records []domain.OperationRecord
	ok, err := loadDoc(ctx, r.store, KeyOperations, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.OperationRecord{}, nil
	}
	for i := range records {
		if records[i].ProjectID == "" {
			records[i].ProjectID = DefaultProjectID
		}
	}
	return records, nil
}

func (r *storeOperationRepo) Save(ctx context.Context, records []domain.OperationRecord) error {
	if records == nil {
		records = []domain.OperationRecord{}
	}
	return saveDoc(ctx, r.store, KeyOperations, records)
}
