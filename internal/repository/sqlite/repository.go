package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite/migrations"
)

// Repository defines the interface for database operations
type Repository interface {
	// Sprint operations
	CreateSprint(ctx context.Context, sprint *Sprint) error
	GetSprint(ctx context.Context, id string) (*Sprint, error)
	GetActiveSprint(ctx context.Context) (*Sprint, error)
	ListSprints(ctx context.Context) ([]*Sprint, error)
	UpdateSprint(ctx context.Context, sprint *Sprint) error
	CancelActiveSprints(ctx context.Context, now time.Time) (int64, error)
	DeleteSprint(ctx context.Context, id string) error

	// Sprint distraction operations
	CreateDistraction(ctx context.Context, distraction *SprintDistraction) error
	ListDistractions(ctx context.Context, sprintID string) ([]*SprintDistraction, error)

	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	ListProjectsByPriority(ctx context.Context, priority string) ([]*Project, error)
	ListProjectsByStatus(ctx context.Context, status string) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error
	CountProjects(ctx context.Context) (int64, error)

	// Ritual operations
	CreateRitual(ctx context.Context, ritual *Ritual) error
	GetRitualByName(ctx context.Context, name string) (*Ritual, error)
	ListRituals(ctx context.Context) ([]*Ritual, error)
	CreateRitualStep(ctx context.Context, step *RitualStep) error
	ListRitualSteps(ctx context.Context, ritualID string) ([]*RitualStep, error)
	CountRituals(ctx context.Context) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	// Foreign keys must be enabled per connection for cascade deletes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// An in-memory database exists per connection, so the pool must be
	// pinned to a single connection or each one sees its own empty schema.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const sprintColumns = `id, task, description, duration_minutes, start_time, end_time, actual_end_time, status, retrospective, created_at, updated_at`

// CreateSprint inserts a sprint, assigning a server-generated id and timestamps
func (r *SQLiteRepository) CreateSprint(ctx context.Context, sprint *Sprint) error {
	stampNew(&sprint.ID, &sprint.CreatedAt, &sprint.UpdatedAt)

	query := `
	INSERT INTO sprints (` + sprintColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		sprint.ID,
		sprint.Task,
		nullString(sprint.Description),
		sprint.DurationMinutes,
		FormatTimeForDB(sprint.StartTime),
		FormatTimePtrForDB(sprint.EndTime),
		FormatTimePtrForDB(sprint.ActualEndTime),
		sprint.Status,
		nullString(sprint.Retrospective),
		FormatTimeForDB(sprint.CreatedAt),
		FormatTimeForDB(sprint.UpdatedAt),
	)
}

// GetSprint retrieves a sprint by ID
func (r *SQLiteRepository) GetSprint(ctx context.Context, id string) (*Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanSprint, "sprint", id, id)
}

// GetActiveSprint retrieves the most recently created active sprint.
// Returns a NotFound error when no sprint is active.
func (r *SQLiteRepository) GetActiveSprint(ctx context.Context) (*Sprint, error) {
	query := `
	SELECT ` + sprintColumns + `
	FROM sprints
	WHERE status = 'active'
	ORDER BY created_at DESC
	LIMIT 1`

	return QuerySingle(ctx, r.db, query, ScanSprint, "active sprint", "current")
}

// ListSprints retrieves all sprints, newest first
func (r *SQLiteRepository) ListSprints(ctx context.Context) ([]*Sprint, error) {
	query := `SELECT ` + sprintColumns + ` FROM sprints ORDER BY created_at DESC`
	return QueryMultiple(ctx, r.db, query, ScanSprints, "sprints")
}

// UpdateSprint persists all mutable sprint fields and refreshes updated_at
func (r *SQLiteRepository) UpdateSprint(ctx context.Context, sprint *Sprint) error {
	sprint.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE sprints
	SET task = ?, description = ?, duration_minutes = ?, start_time = ?, end_time = ?,
	    actual_end_time = ?, status = ?, retrospective = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "sprint", sprint.ID,
		sprint.Task,
		nullString(sprint.Description),
		sprint.DurationMinutes,
		FormatTimeForDB(sprint.StartTime),
		FormatTimePtrForDB(sprint.EndTime),
		FormatTimePtrForDB(sprint.ActualEndTime),
		sprint.Status,
		nullString(sprint.Retrospective),
		FormatTimeForDB(sprint.UpdatedAt),
		sprint.ID,
	)
}

// CancelActiveSprints marks every active sprint cancelled and returns how many
// rows changed. Used as a check-and-set before starting a new sprint so at
// most one sprint is active.
func (r *SQLiteRepository) CancelActiveSprints(ctx context.Context, now time.Time) (int64, error) {
	query := `
	UPDATE sprints
	SET status = 'cancelled', actual_end_time = ?, updated_at = ?
	WHERE status = 'active'`

	result, err := r.db.ExecContext(ctx, query, FormatTimeForDB(now), FormatTimeForDB(now))
	if err != nil {
		return 0, HandleDatabaseError("cancel active sprints", err)
	}
	cancelled, err := result.RowsAffected()
	if err != nil {
		return 0, HandleDatabaseError("get rows affected", err)
	}
	return cancelled, nil
}

// DeleteSprint deletes a sprint by ID; distractions cascade
func (r *SQLiteRepository) DeleteSprint(ctx context.Context, id string) error {
	query := `DELETE FROM sprints WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "sprint", id, id)
}

// CreateDistraction inserts a distraction row for a sprint
func (r *SQLiteRepository) CreateDistraction(ctx context.Context, distraction *SprintDistraction) error {
	if distraction.ID == "" {
		distraction.ID = uuid.NewString()
	}
	if distraction.Timestamp.IsZero() {
		distraction.Timestamp = time.Now().UTC()
	}

	query := `
	INSERT INTO sprint_distractions (id, sprint_id, distraction, timestamp, addressed)
	VALUES (?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		distraction.ID,
		distraction.SprintID,
		distraction.Distraction,
		FormatTimeForDB(distraction.Timestamp),
		distraction.Addressed,
	)
}

// ListDistractions retrieves a sprint's distractions in logged order
func (r *SQLiteRepository) ListDistractions(ctx context.Context, sprintID string) ([]*SprintDistraction, error) {
	query := `
	SELECT id, sprint_id, distraction, timestamp, addressed
	FROM sprint_distractions
	WHERE sprint_id = ?
	ORDER BY timestamp ASC`

	return QueryMultiple(ctx, r.db, query, ScanDistractions, "sprint distractions", sprintID)
}

const projectColumns = `id, title, description, status, priority, category, progress_percentage, notes, is_high_priority, is_completed, created_at, updated_at, due_date, completed_at`

// CreateProject inserts a project, assigning a server-generated id and timestamps
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	stampNew(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	query := `
	INSERT INTO projects (` + projectColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		project.ID,
		project.Title,
		nullString(project.Description),
		project.Status,
		project.Priority,
		nullString(project.Category),
		project.ProgressPercentage,
		nullString(project.Notes),
		project.IsHighPriority,
		project.IsCompleted,
		FormatTimeForDB(project.CreatedAt),
		FormatTimeForDB(project.UpdatedAt),
		FormatTimePtrForDB(project.DueDate),
		FormatTimePtrForDB(project.CompletedAt),
	)
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects in creation order
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at ASC`
	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// ListProjectsByPriority retrieves projects matching a priority, case-insensitively
func (r *SQLiteRepository) ListProjectsByPriority(ctx context.Context, priority string) ([]*Project, error) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE LOWER(priority) = LOWER(?)
	ORDER BY created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects", priority)
}

// ListProjectsByStatus retrieves projects matching a status, case-insensitively
func (r *SQLiteRepository) ListProjectsByStatus(ctx context.Context, status string) ([]*Project, error) {
	query := `
	SELECT ` + projectColumns + `
	FROM projects
	WHERE LOWER(status) = LOWER(?)
	ORDER BY created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects", status)
}

// UpdateProject persists all mutable project fields and refreshes updated_at
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	project.UpdatedAt = time.Now().UTC()

	query := `
	UPDATE projects
	SET title = ?, description = ?, status = ?, priority = ?, category = ?,
	    progress_percentage = ?, notes = ?, is_high_priority = ?, is_completed = ?,
	    updated_at = ?, due_date = ?, completed_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", project.ID,
		project.Title,
		nullString(project.Description),
		project.Status,
		project.Priority,
		nullString(project.Category),
		project.ProgressPercentage,
		nullString(project.Notes),
		project.IsHighPriority,
		project.IsCompleted,
		FormatTimeForDB(project.UpdatedAt),
		FormatTimePtrForDB(project.DueDate),
		FormatTimePtrForDB(project.CompletedAt),
		project.ID,
	)
}

// DeleteProject deletes a project by ID
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", id, id)
}

// CountProjects returns the total number of projects
func (r *SQLiteRepository) CountProjects(ctx context.Context) (int64, error) {
	return QueryCount(ctx, r.db, `SELECT COUNT(*) FROM projects`, "projects")
}

const ritualColumns = `id, name, title, description, estimated_duration_minutes, is_active, created_at, updated_at`

// CreateRitual inserts a ritual, assigning a server-generated id and timestamps
func (r *SQLiteRepository) CreateRitual(ctx context.Context, ritual *Ritual) error {
	stampNew(&ritual.ID, &ritual.CreatedAt, &ritual.UpdatedAt)

	query := `
	INSERT INTO rituals (` + ritualColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		ritual.ID,
		ritual.Name,
		ritual.Title,
		nullString(ritual.Description),
		ritual.EstimatedDurationMinutes,
		ritual.IsActive,
		FormatTimeForDB(ritual.CreatedAt),
		FormatTimeForDB(ritual.UpdatedAt),
	)
}

// GetRitualByName retrieves a ritual by its short name, e.g. "morning"
func (r *SQLiteRepository) GetRitualByName(ctx context.Context, name string) (*Ritual, error) {
	query := `SELECT ` + ritualColumns + ` FROM rituals WHERE name = ?`
	return QuerySingle(ctx, r.db, query, ScanRitual, "ritual", name, name)
}

// ListRituals retrieves all rituals
func (r *SQLiteRepository) ListRituals(ctx context.Context) ([]*Ritual, error) {
	query := `SELECT ` + ritualColumns + ` FROM rituals ORDER BY name ASC`
	return QueryMultiple(ctx, r.db, query, ScanRituals, "rituals")
}

// CreateRitualStep inserts a step for a ritual
func (r *SQLiteRepository) CreateRitualStep(ctx context.Context, step *RitualStep) error {
	if step.ID == "" {
		step.ID = uuid.NewString()
	}
	if step.CreatedAt.IsZero() {
		step.CreatedAt = time.Now().UTC()
	}

	query := `
	INSERT INTO ritual_steps (id, ritual_id, step_text, step_order, is_required, estimated_minutes, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		step.ID,
		step.RitualID,
		step.StepText,
		step.StepOrder,
		step.IsRequired,
		nullInt(step.EstimatedMinutes),
		FormatTimeForDB(step.CreatedAt),
	)
}

// ListRitualSteps retrieves a ritual's steps in ascending declared order
func (r *SQLiteRepository) ListRitualSteps(ctx context.Context, ritualID string) ([]*RitualStep, error) {
	query := `
	SELECT id, ritual_id, step_text, step_order, is_required, estimated_minutes, created_at
	FROM ritual_steps
	WHERE ritual_id = ?
	ORDER BY step_order ASC`

	return QueryMultiple(ctx, r.db, query, ScanRitualSteps, "ritual steps", ritualID)
}

// CountRituals returns the total number of rituals
func (r *SQLiteRepository) CountRituals(ctx context.Context) (int64, error) {
	return QueryCount(ctx, r.db, `SELECT COUNT(*) FROM rituals`, "rituals")
}

// stampNew assigns a generated id and creation timestamps for a fresh row
func stampNew(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	if updatedAt.IsZero() {
		*updatedAt = now
	}
}

func nullString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullInt(n *int) interface{} {
	if n == nil {
		return nil
	}
	return *n
}
