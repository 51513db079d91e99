package services

import (
	"context"
	"time"

	"personal-assistant/internal/domain"
)

// Clock abstracts the current time so services can be tested with a
// fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns a Clock backed by time.Now in UTC.
func SystemClock() Clock { return systemClock{} }

// SprintStartRequest carries the inputs for starting a focus sprint.
type SprintStartRequest struct {
	Task            string `json:"task"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ProjectCreateRequest carries the inputs for creating a project.
type ProjectCreateRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority"`
	Category    *string    `json:"category"`
	DueDate     *time.Time `json:"due_date"`
}

// SprintService handles focus sprint lifecycle and workflow operations
type SprintService interface {
	// StartSprint begins a new sprint, cancelling any sprint still active.
	StartSprint(ctx context.Context, req SprintStartRequest) (*domain.Sprint, error)

	// GetActiveSprint returns the running sprint, or nil when none is active.
	GetActiveSprint(ctx context.Context) (*domain.Sprint, error)

	// ListSprints returns all sprints, newest first, with distractions attached.
	ListSprints(ctx context.Context) ([]domain.Sprint, error)

	// Nudge produces a mid-sprint focus reminder for the identified sprint.
	Nudge(ctx context.Context, sprintID, message string) (*domain.Nudge, error)

	// LogDistraction records a distraction against the identified sprint.
	LogDistraction(ctx context.Context, sprintID, distraction string) (*domain.Distraction, error)

	// CompleteSprint marks the identified sprint completed, recording an
	// optional retrospective.
	CompleteSprint(ctx context.Context, sprintID, retrospective string) (*domain.Sprint, error)
}

// ProjectService handles project CRUD and filtering operations
type ProjectService interface {
	CreateProject(ctx context.Context, req ProjectCreateRequest) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListProjectsByPriority(ctx context.Context, priority string) ([]domain.Project, error)
	ListProjectsByStatus(ctx context.Context, status string) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id string, update domain.ProjectUpdate) (*domain.Project, error)

	// DeleteProject removes a project and returns its title.
	DeleteProject(ctx context.Context, id string) (string, error)
}

// RitualService handles ritual checklist retrieval
type RitualService interface {
	// GetChecklist returns the checklist form of the named ritual.
	GetChecklist(ctx context.Context, name string) (*domain.Checklist, error)

	// ListRituals returns all rituals with their steps in order.
	ListRituals(ctx context.Context) ([]domain.Ritual, error)
}
