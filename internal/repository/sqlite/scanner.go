package sqlite

import (
	"database/sql"
	"time"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanSprint scans a single sprint from a database row
func ScanSprint(scanner Scanner) (*Sprint, error) {
	sprint := &Sprint{}
	var (
		description   sql.NullString
		startTime     string
		endTime       sql.NullString
		actualEndTime sql.NullString
		retrospective sql.NullString
		createdAt     string
		updatedAt     string
	)

	err := scanner.Scan(
		&sprint.ID,
		&sprint.Task,
		&description,
		&sprint.DurationMinutes,
		&startTime,
		&endTime,
		&actualEndTime,
		&sprint.Status,
		&retrospective,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		sprint.Description = &description.String
	}
	if retrospective.Valid {
		sprint.Retrospective = &retrospective.String
	}
	if sprint.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if sprint.EndTime, err = parseNullTime(endTime); err != nil {
		return nil, err
	}
	if sprint.ActualEndTime, err = parseNullTime(actualEndTime); err != nil {
		return nil, err
	}
	if sprint.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if sprint.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return sprint, nil
}

// ScanSprints scans multiple sprints from database rows
func ScanSprints(rows Rows) ([]*Sprint, error) {
	return scanAll(rows, ScanSprint)
}

// ScanDistraction scans a single sprint distraction from a database row
func ScanDistraction(scanner Scanner) (*SprintDistraction, error) {
	distraction := &SprintDistraction{}
	var timestamp string

	err := scanner.Scan(
		&distraction.ID,
		&distraction.SprintID,
		&distraction.Distraction,
		&timestamp,
		&distraction.Addressed,
	)
	if err != nil {
		return nil, err
	}

	if distraction.Timestamp, err = ParseTimeFromDB(timestamp); err != nil {
		return nil, err
	}

	return distraction, nil
}

// ScanDistractions scans multiple sprint distractions from database rows
func ScanDistractions(rows Rows) ([]*SprintDistraction, error) {
	return scanAll(rows, ScanDistraction)
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var (
		description sql.NullString
		category    sql.NullString
		notes       sql.NullString
		createdAt   string
		updatedAt   string
		dueDate     sql.NullString
		completedAt sql.NullString
	)

	err := scanner.Scan(
		&project.ID,
		&project.Title,
		&description,
		&project.Status,
		&project.Priority,
		&category,
		&project.ProgressPercentage,
		&notes,
		&project.IsHighPriority,
		&project.IsCompleted,
		&createdAt,
		&updatedAt,
		&dueDate,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		project.Description = &description.String
	}
	if category.Valid {
		project.Category = &category.String
	}
	if notes.Valid {
		project.Notes = &notes.String
	}
	if project.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}
	if project.DueDate, err = parseNullTime(dueDate); err != nil {
		return nil, err
	}
	if project.CompletedAt, err = parseNullTime(completedAt); err != nil {
		return nil, err
	}

	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	return scanAll(rows, ScanProject)
}

// ScanRitual scans a single ritual from a database row
func ScanRitual(scanner Scanner) (*Ritual, error) {
	ritual := &Ritual{}
	var (
		description sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := scanner.Scan(
		&ritual.ID,
		&ritual.Name,
		&ritual.Title,
		&description,
		&ritual.EstimatedDurationMinutes,
		&ritual.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		ritual.Description = &description.String
	}
	if ritual.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if ritual.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return ritual, nil
}

// ScanRituals scans multiple rituals from database rows
func ScanRituals(rows Rows) ([]*Ritual, error) {
	return scanAll(rows, ScanRitual)
}

// ScanRitualStep scans a single ritual step from a database row
func ScanRitualStep(scanner Scanner) (*RitualStep, error) {
	step := &RitualStep{}
	var (
		estimatedMinutes sql.NullInt64
		createdAt        string
	)

	err := scanner.Scan(
		&step.ID,
		&step.RitualID,
		&step.StepText,
		&step.StepOrder,
		&step.IsRequired,
		&estimatedMinutes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if estimatedMinutes.Valid {
		minutes := int(estimatedMinutes.Int64)
		step.EstimatedMinutes = &minutes
	}
	if step.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}

	return step, nil
}

// ScanRitualSteps scans multiple ritual steps from database rows
func ScanRitualSteps(rows Rows) ([]*RitualStep, error) {
	return scanAll(rows, ScanRitualStep)
}

func scanAll[T any](rows Rows, scanFunc func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		result, err := scanFunc(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTimeFromDB(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
