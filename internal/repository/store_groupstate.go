package repository

import (
	"context"

	"github.com/linyuchen/gantry/internal/store"
)

type storeGroupStateRepo struct {
	store *store.Store
}

func NewGroupStateRepo(st *store.Store) GroupStateRepo {
	return &storeGroupStateRepo{store: st}
}

func (r *storeGroupStateRepo) Load(ctx context.Context) (map[string]bool, error) {
	var state map[string]bool
	ok, err := loadDoc(ctx, r.store, KeyOperationGroups, &state)
	if err != nil {
		return nil, err
	}
	if !ok || state == nil {
		return map[string]bool{}, nil
	}
	return state, nil
}

func (r *storeGroupStateRepo) Save(ctx context.Context, state map[string]bool) error {
	if state == nil {
		state = map[string]bool{}
	}
	return saveDoc(ctx, r.store, KeyOperationGroups, state)
}
