package services

import (
	"context"
	"strings"

	"personal-assistant/internal/domain"
	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite"
	"personal-assistant/internal/validation"
)

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	repo             sqlite.Repository
	clock            Clock
	mapper           *domain.Mapper
	projectValidator *validation.ProjectValidator
}

// NewProjectService creates a new ProjectService instance
func NewProjectService(repo sqlite.Repository, clock Clock) ProjectService {
	return &projectServiceImpl{
		repo:             repo,
		clock:            clock,
		mapper:           domain.NewMapper(),
		projectValidator: validation.NewProjectValidator(),
	}
}

// CreateProject creates a project. Priority defaults to medium and
// status to active; both are stored lowercase.
func (p *projectServiceImpl) CreateProject(ctx context.Context, req ProjectCreateRequest) (*domain.Project, error) {
	title := strings.TrimSpace(req.Title)
	if err := p.projectValidator.ValidateTitle(title); err != nil {
		return nil, errors.NewValidationError("invalid project", err)
	}

	priority := strings.ToLower(strings.TrimSpace(req.Priority))
	if priority == "" {
		priority = string(domain.PriorityMedium)
	}
	if err := p.projectValidator.ValidatePriority(priority); err != nil {
		return nil, errors.NewValidationError("invalid project", err)
	}

	dbProject := &sqlite.Project{
		Title:          title,
		Description:    req.Description,
		Status:         string(domain.ProjectStatusActive),
		Priority:       priority,
		Category:       req.Category,
		IsHighPriority: priority == string(domain.PriorityHigh),
		DueDate:        req.DueDate,
	}

	if err := p.repo.CreateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := p.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// GetProject retrieves a project by ID
func (p *projectServiceImpl) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	project := p.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// ListProjects returns all projects in creation order
func (p *projectServiceImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	dbProjects, err := p.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// ListProjectsByPriority returns projects matching a priority, case-insensitively.
// An unrecognized priority simply matches nothing.
func (p *projectServiceImpl) ListProjectsByPriority(ctx context.Context, priority string) ([]domain.Project, error) {
	dbProjects, err := p.repo.ListProjectsByPriority(ctx, priority)
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// ListProjectsByStatus returns projects matching a status, case-insensitively.
// An unrecognized status simply matches nothing.
func (p *projectServiceImpl) ListProjectsByStatus(ctx context.Context, status string) ([]domain.Project, error) {
	dbProjects, err := p.repo.ListProjectsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return p.mapper.Project.FromDatabaseSlice(dbProjects), nil
}

// UpdateProject applies the non-nil fields of a partial update.
// Moving a project to completed stamps its completion time; moving it
// out of completed clears it.
func (p *projectServiceImpl) UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error) {
	if err := p.projectValidator.ValidateUpdate(update); err != nil {
		return nil, errors.NewValidationError("invalid project update", err)
	}

	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		dbProject.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		dbProject.Description = update.Description
	}
	if update.Priority != nil {
		priority := strings.ToLower(*update.Priority)
		dbProject.Priority = priority
		dbProject.IsHighPriority = priority == string(domain.PriorityHigh)
	}
	if update.Status != nil {
		status := strings.ToLower(*update.Status)
		dbProject.Status = status
		if status == string(domain.ProjectStatusCompleted) {
			if !dbProject.IsCompleted {
				now := p.clock.Now()
				dbProject.CompletedAt = &now
			}
			dbProject.IsCompleted = true
		} else {
			dbProject.IsCompleted = false
			dbProject.CompletedAt = nil
		}
	}
	if update.Category != nil {
		dbProject.Category = update.Category
	}
	if update.ProgressPercentage != nil {
		dbProject.ProgressPercentage = *update.ProgressPercentage
	}
	if update.Notes != nil {
		dbProject.Notes = update.Notes
	}
	if update.DueDate != nil {
		dbProject.DueDate = update.DueDate
	}

	if err := p.repo.UpdateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := p.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// DeleteProject removes a project and returns its title for confirmation
func (p *projectServiceImpl) DeleteProject(ctx context.Context, id string) (string, error) {
	dbProject, err := p.repo.GetProject(ctx, id)
	if err != nil {
		return "", err
	}

	if err := p.repo.DeleteProject(ctx, id); err != nil {
		return "", err
	}
	return dbProject.Title, nil
}
