package repository

import (
	"context"
	"time"

	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/store"
)

// DefaultProjectID is the id of the project seeded into an empty store. It
// also serves as the fallback for legacy records persisted before records
// carried a project id.
const DefaultProjectID = "default-project"

type storeProjectRepo struct {
	store *store.Store
}

func NewProjectRepo(st *store.Store) ProjectRepo {
	return &storeProjectRepo{store: st}
}

func (r *storeProjectRepo) Load(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	ok, err := loadDoc(ctx, r.store, KeyProjects, &projects)
	if err != nil {
		return nil, err
	}
	if !ok {
		return seedProjects(), nil
	}
	return projects, nil
}

func (r *storeProjectRepo) Save(ctx context.Context, projects []domain.Project) error {
	if projects == nil {
		projects = []domain.Project{}
	}
	return saveDoc(ctx, r.store, KeyProjects, projects)
}

func seedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:        DefaultProjectID,
			Name:      "Default Construction Project",
			CreatedAt: time.Now().Format(time.RFC3339),
		},
	}
}
