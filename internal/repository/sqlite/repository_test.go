package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "assistant.db")
	repo, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestNewInMemorySurvivesConnectionChurn(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	// Force every statement onto a fresh pool connection; the schema must
	// still be visible because the pool is pinned to one connection.
	repo.db.SetMaxIdleConns(0)

	ctx := context.Background()
	count, err := repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.CreateSprint(ctx, newTestSprint("write report")))

	sprints, err := repo.ListSprints(ctx)
	require.NoError(t, err)
	assert.Len(t, sprints, 1)
}

func newTestSprint(task string) *Sprint {
	start := time.Now().UTC()
	end := start.Add(25 * time.Minute)
	return &Sprint{
		Task:            task,
		DurationMinutes: 25,
		StartTime:       start,
		EndTime:         &end,
		Status:          "active",
	}
}

func TestCreateSprint(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	sprint := newTestSprint("write report")
	err := repo.CreateSprint(ctx, sprint)
	require.NoError(t, err)
	assert.NotEmpty(t, sprint.ID)
	assert.False(t, sprint.CreatedAt.IsZero())

	retrieved, err := repo.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, sprint.ID, retrieved.ID)
	assert.Equal(t, "write report", retrieved.Task)
	assert.Equal(t, 25, retrieved.DurationMinutes)
	assert.Equal(t, "active", retrieved.Status)
	assert.Nil(t, retrieved.Description)
	require.NotNil(t, retrieved.EndTime)
	assert.Equal(t, sprint.EndTime.Unix(), retrieved.EndTime.Unix())
}

func TestGetSprintNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetSprint(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestGetActiveSprint(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	_, err := repo.GetActiveSprint(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	first := newTestSprint("first")
	require.NoError(t, repo.CreateSprint(ctx, first))
	time.Sleep(5 * time.Millisecond)
	second := newTestSprint("second")
	require.NoError(t, repo.CreateSprint(ctx, second))

	active, err := repo.GetActiveSprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	// Completed sprints are excluded.
	second.Status = "completed"
	require.NoError(t, repo.UpdateSprint(ctx, second))

	active, err = repo.GetActiveSprint(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)
}

func TestListSprintsNewestFirst(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	older := newTestSprint("older")
	require.NoError(t, repo.CreateSprint(ctx, older))
	time.Sleep(5 * time.Millisecond)
	newer := newTestSprint("newer")
	require.NoError(t, repo.CreateSprint(ctx, newer))

	sprints, err := repo.ListSprints(ctx)
	require.NoError(t, err)
	require.Len(t, sprints, 2)
	assert.Equal(t, newer.ID, sprints[0].ID)
	assert.Equal(t, older.ID, sprints[1].ID)
}

func TestCancelActiveSprints(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := newTestSprint("first")
	require.NoError(t, repo.CreateSprint(ctx, first))
	second := newTestSprint("second")
	require.NoError(t, repo.CreateSprint(ctx, second))

	cancelled, err := repo.CancelActiveSprints(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(2), cancelled)

	_, err = repo.GetActiveSprint(ctx)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	retrieved, err := repo.GetSprint(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", retrieved.Status)
	assert.NotNil(t, retrieved.ActualEndTime)

	// No active sprints left to cancel.
	cancelled, err = repo.CancelActiveSprints(ctx, time.Now().UTC())
	require.NoError(t, err)
	assert.Zero(t, cancelled)
}

func TestUpdateSprint(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	sprint := newTestSprint("to complete")
	require.NoError(t, repo.CreateSprint(ctx, sprint))
	createdUpdatedAt := sprint.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	retro := "went well"
	actualEnd := time.Now().UTC()
	sprint.Status = "completed"
	sprint.Retrospective = &retro
	sprint.ActualEndTime = &actualEnd
	require.NoError(t, repo.UpdateSprint(ctx, sprint))

	retrieved, err := repo.GetSprint(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", retrieved.Status)
	require.NotNil(t, retrieved.Retrospective)
	assert.Equal(t, "went well", *retrieved.Retrospective)
	require.NotNil(t, retrieved.ActualEndTime)
	assert.True(t, retrieved.UpdatedAt.After(createdUpdatedAt))
}

func TestUpdateSprintNotFound(t *testing.T) {
	repo := setupTestDB(t)

	sprint := newTestSprint("ghost")
	sprint.ID = "missing-id"
	sprint.CreatedAt = time.Now().UTC()
	sprint.UpdatedAt = sprint.CreatedAt

	err := repo.UpdateSprint(context.Background(), sprint)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestDistractions(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	sprint := newTestSprint("focus")
	require.NoError(t, repo.CreateSprint(ctx, sprint))

	first := &SprintDistraction{SprintID: sprint.ID, Distraction: "phone buzzed"}
	require.NoError(t, repo.CreateDistraction(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.Timestamp.IsZero())

	time.Sleep(5 * time.Millisecond)
	second := &SprintDistraction{SprintID: sprint.ID, Distraction: "email ping"}
	require.NoError(t, repo.CreateDistraction(ctx, second))

	distractions, err := repo.ListDistractions(ctx, sprint.ID)
	require.NoError(t, err)
	require.Len(t, distractions, 2)
	assert.Equal(t, "phone buzzed", distractions[0].Distraction)
	assert.Equal(t, "email ping", distractions[1].Distraction)
	assert.False(t, distractions[0].Addressed)
}

func TestDeleteSprintCascadesDistractions(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	sprint := newTestSprint("doomed")
	require.NoError(t, repo.CreateSprint(ctx, sprint))
	require.NoError(t, repo.CreateDistraction(ctx, &SprintDistraction{SprintID: sprint.ID, Distraction: "noise"}))

	require.NoError(t, repo.DeleteSprint(ctx, sprint.ID))

	distractions, err := repo.ListDistractions(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Empty(t, distractions)
}

func TestProjectCRUD(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	project := &Project{
		Title:    "Inbox Zero",
		Status:   "active",
		Priority: "medium",
	}
	require.NoError(t, repo.CreateProject(ctx, project))
	assert.NotEmpty(t, project.ID)

	retrieved, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inbox Zero", retrieved.Title)
	assert.Equal(t, 0, retrieved.ProgressPercentage)
	assert.False(t, retrieved.IsCompleted)

	retrieved.Title = "Inbox Zero (daily)"
	retrieved.ProgressPercentage = 40
	require.NoError(t, repo.UpdateProject(ctx, retrieved))

	updated, err := repo.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inbox Zero (daily)", updated.Title)
	assert.Equal(t, 40, updated.ProgressPercentage)

	require.NoError(t, repo.DeleteProject(ctx, project.ID))
	_, err = repo.GetProject(ctx, project.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	err = repo.DeleteProject(ctx, project.ID)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestProjectFiltersCaseInsensitive(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	high := &Project{Title: "High", Status: "active", Priority: "high"}
	require.NoError(t, repo.CreateProject(ctx, high))
	medium := &Project{Title: "Medium", Status: "on_hold", Priority: "medium"}
	require.NoError(t, repo.CreateProject(ctx, medium))

	byPriority, err := repo.ListProjectsByPriority(ctx, "HIGH")
	require.NoError(t, err)
	require.Len(t, byPriority, 1)
	assert.Equal(t, high.ID, byPriority[0].ID)

	byStatus, err := repo.ListProjectsByStatus(ctx, "On_Hold")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, medium.ID, byStatus[0].ID)

	none, err := repo.ListProjectsByPriority(ctx, "urgent")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountProjects(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	count, err := repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateProject(ctx, &Project{Title: "One", Status: "active", Priority: "low"}))
	count, err = repo.CountProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRitualWithOrderedSteps(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	ritual := &Ritual{
		Name:                     "morning",
		Title:                    "Morning Ritual",
		EstimatedDurationMinutes: 20,
		IsActive:                 true,
	}
	require.NoError(t, repo.CreateRitual(ctx, ritual))

	// Insert out of declared order to verify retrieval ordering.
	minutes := 5
	require.NoError(t, repo.CreateRitualStep(ctx, &RitualStep{
		RitualID: ritual.ID, StepText: "Review projects", StepOrder: 3, IsRequired: true,
	}))
	require.NoError(t, repo.CreateRitualStep(ctx, &RitualStep{
		RitualID: ritual.ID, StepText: "Cold shower", StepOrder: 1, IsRequired: true, EstimatedMinutes: &minutes,
	}))
	require.NoError(t, repo.CreateRitualStep(ctx, &RitualStep{
		RitualID: ritual.ID, StepText: "Journaling", StepOrder: 2, IsRequired: true,
	}))

	retrieved, err := repo.GetRitualByName(ctx, "morning")
	require.NoError(t, err)
	assert.Equal(t, "Morning Ritual", retrieved.Title)

	steps, err := repo.ListRitualSteps(ctx, ritual.ID)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	assert.Equal(t, "Cold shower", steps[0].StepText)
	assert.Equal(t, "Journaling", steps[1].StepText)
	assert.Equal(t, "Review projects", steps[2].StepText)
	require.NotNil(t, steps[0].EstimatedMinutes)
	assert.Equal(t, 5, *steps[0].EstimatedMinutes)
}

func TestGetRitualByNameNotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetRitualByName(context.Background(), "afternoon")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestCountRituals(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	count, err := repo.CountRituals(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateRitual(ctx, &Ritual{Name: "evening", Title: "Evening Ritual", EstimatedDurationMinutes: 15, IsActive: true}))
	count, err = repo.CountRituals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
