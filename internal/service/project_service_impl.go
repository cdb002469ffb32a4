package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linyuchen/gantry/internal/domain"
	"github.com/linyuchen/gantry/internal/repository"
)

type projectService struct {
	projects    repository.ProjectRepo
	procurement repository.ProcurementRepo
	operations  repository.OperationRepo
	quality     repository.QualityRepo
}

func NewProjectService(
	projects repository.ProjectRepo,
	procurement repository.ProcurementRepo,
	operations repository.OperationRepo,
	quality repository.QualityRepo,
) ProjectService {
	return &projectService{
		projects:    projects,
		procurement: procurement,
		operations:  operations,
		quality:     quality,
	}
}

func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.Load(ctx)
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

func (s *projectService) Create(ctx context.Context, name string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return nil, err
	}
	p := domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	projects = append(projects, p)
	if err := s.projects.Save(ctx, projects); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *projectService) Rename(ctx context.Context, id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range projects {
		if projects[i].ID == id {
			projects[i].Name = name
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return s.projects.Save(ctx, projects)
}

// Delete removes the project and cascades across every record dataset so no
// orphaned rows survive under the deleted id.
func (s *projectService) Delete(ctx context.Context, id string) error {
	projects, err := s.projects.Load(ctx)
	if err != nil {
		return err
	}
	kept := projects[:0:0]
	found := false
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}

	if err := s.cascadeProcurement(ctx, id); err != nil {
		return err
	}
	if err := s.cascadeOperations(ctx, id); err != nil {
		return err
	}
	if err := s.cascadeQuality(ctx, id); err != nil {
		return err
	}
	return s.projects.Save(ctx, kept)
}

func (s *projectService) cascadeProcurement(ctx context.Context, projectID string) error {
	records, err := s.procurement.Load(ctx)
	if err != nil {
		return fmt.Errorf("cascading procurement records: %w", err)
	}
	kept := records[:0:0]
	for _, rec := range records {
		if rec.ProjectID != projectID {
			kept = append(kept, rec)
		}
	}
	return s.procurement.Save(ctx, kept)
}

func (s *projectService) cascadeOperations(ctx context.Context, projectID string) error {
	records, err := s.operations.Load(ctx)
	if err != nil {
		return fmt.Errorf("cascading operation records: %w", err)
	}
	kept := records[:0:0]
	for _, rec := range records {
		if rec.ProjectID != projectID {
			kept = append(kept, rec)
		}
	}
	return s.operations.Save(ctx, kept)
}

func (s *projectService) cascadeQuality(ctx context.Context, projectID string) error {
	records, err := s.quality.Load(ctx)
	if err != nil {
		return fmt.Errorf("cascading quality records: %w", err)
	}
	kept := records[:0:0]
	for _, rec := range records {
		if rec.ProjectID != projectID {
			kept = append(kept, rec)
		}
	}
	return s.quality.Save(ctx, kept)
}
