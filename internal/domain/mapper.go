package domain

import (
	"personal-assistant/internal/repository/sqlite"
)

// SprintMapper handles conversion between domain and database Sprint models.
type SprintMapper struct{}

// NewSprintMapper creates a new SprintMapper instance.
func NewSprintMapper() *SprintMapper {
	return &SprintMapper{}
}

// ToDatabase converts a domain Sprint to a database Sprint.
func (m *SprintMapper) ToDatabase(sprint Sprint) sqlite.Sprint {
	return sqlite.Sprint{
		ID:              sprint.ID,
		Task:            sprint.Task,
		Description:     sprint.Description,
		DurationMinutes: sprint.DurationMinutes,
		StartTime:       sprint.StartTime,
		EndTime:         sprint.EndTime,
		ActualEndTime:   sprint.ActualEndTime,
		Status:          string(sprint.Status),
		Retrospective:   sprint.Retrospective,
		CreatedAt:       sprint.CreatedAt,
		UpdatedAt:       sprint.UpdatedAt,
	}
}

// FromDatabase converts a database Sprint to a domain Sprint.
// Distractions are attached separately by the service layer.
func (m *SprintMapper) FromDatabase(dbSprint sqlite.Sprint) Sprint {
	return Sprint{
		ID:              dbSprint.ID,
		Task:            dbSprint.Task,
		Description:     dbSprint.Description,
		DurationMinutes: dbSprint.DurationMinutes,
		StartTime:       dbSprint.StartTime,
		EndTime:         dbSprint.EndTime,
		ActualEndTime:   dbSprint.ActualEndTime,
		Status:          SprintStatus(dbSprint.Status),
		Retrospective:   dbSprint.Retrospective,
		CreatedAt:       dbSprint.CreatedAt,
		UpdatedAt:       dbSprint.UpdatedAt,
		Distractions:    []string{},
	}
}

// DistractionFromDatabase converts a database distraction row.
func (m *SprintMapper) DistractionFromDatabase(db sqlite.SprintDistraction) Distraction {
	return Distraction{
		ID:          db.ID,
		SprintID:    db.SprintID,
		Distraction: db.Distraction,
		Timestamp:   db.Timestamp,
		Addressed:   db.Addressed,
	}
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:                 project.ID,
		Title:              project.Title,
		Description:        project.Description,
		Status:             string(project.Status),
		Priority:           string(project.Priority),
		Category:           project.Category,
		ProgressPercentage: project.ProgressPercentage,
		Notes:              project.Notes,
		IsHighPriority:     project.IsHighPriority,
		IsCompleted:        project.IsCompleted,
		CreatedAt:          project.CreatedAt,
		UpdatedAt:          project.UpdatedAt,
		DueDate:            project.DueDate,
		CompletedAt:        project.CompletedAt,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:                 dbProject.ID,
		Title:              dbProject.Title,
		Description:        dbProject.Description,
		Status:             ProjectStatus(dbProject.Status),
		Priority:           Priority(dbProject.Priority),
		Category:           dbProject.Category,
		ProgressPercentage: dbProject.ProgressPercentage,
		Notes:              dbProject.Notes,
		IsHighPriority:     dbProject.IsHighPriority,
		IsCompleted:        dbProject.IsCompleted,
		CreatedAt:          dbProject.CreatedAt,
		UpdatedAt:          dbProject.UpdatedAt,
		DueDate:            dbProject.DueDate,
		CompletedAt:        dbProject.CompletedAt,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, dbProject := range dbProjects {
		projects[i] = m.FromDatabase(*dbProject)
	}
	return projects
}

// RitualMapper handles conversion between domain and database Ritual models.
type RitualMapper struct{}

// NewRitualMapper creates a new RitualMapper instance.
func NewRitualMapper() *RitualMapper {
	return &RitualMapper{}
}

// FromDatabase converts a database Ritual and its steps to a domain Ritual.
func (m *RitualMapper) FromDatabase(dbRitual sqlite.Ritual, dbSteps []*sqlite.RitualStep) Ritual {
	steps := make([]RitualStep, len(dbSteps))
	for i, dbStep := range dbSteps {
		steps[i] = RitualStep{
			ID:               dbStep.ID,
			RitualID:         dbStep.RitualID,
			StepText:         dbStep.StepText,
			Order:            dbStep.StepOrder,
			IsRequired:       dbStep.IsRequired,
			EstimatedMinutes: dbStep.EstimatedMinutes,
		}
	}
	return Ritual{
		ID:                       dbRitual.ID,
		Name:                     dbRitual.Name,
		Title:                    dbRitual.Title,
		Description:              dbRitual.Description,
		EstimatedDurationMinutes: dbRitual.EstimatedDurationMinutes,
		IsActive:                 dbRitual.IsActive,
		CreatedAt:                dbRitual.CreatedAt,
		UpdatedAt:                dbRitual.UpdatedAt,
		Steps:                    steps,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Sprint  *SprintMapper
	Project *ProjectMapper
	Ritual  *RitualMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Sprint:  NewSprintMapper(),
		Project: NewProjectMapper(),
		Ritual:  NewRitualMapper(),
	}
}
