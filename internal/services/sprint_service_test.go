package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/domain"
	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite"
)

// fakeClock returns a controllable instant for deterministic assertions.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func setupSprintService(t *testing.T) (SprintService, *fakeClock) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	clock := &fakeClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	return NewSprintService(repo, clock), clock
}

func TestSprintService_StartSprint(t *testing.T) {
	tests := []struct {
		name           string
		req            SprintStartRequest
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name: "should start sprint with valid inputs",
			req:  SprintStartRequest{Task: "Write report", DurationMinutes: 25},
		},
		{
			name: "should trim task and description",
			req:  SprintStartRequest{Task: "  Write report  ", Description: "  quarterly  ", DurationMinutes: 25},
		},
		{
			name: "should return validation error for empty task",
			req:  SprintStartRequest{Task: "", DurationMinutes: 25},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "task")
			},
		},
		{
			name: "should return validation error for zero duration",
			req:  SprintStartRequest{Task: "Write report", DurationMinutes: 0},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "duration")
			},
		},
		{
			name: "should return validation error for excessive duration",
			req:  SprintStartRequest{Task: "Write report", DurationMinutes: 481},
			errorAssertion: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "duration")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, clock := setupSprintService(t)
			ctx := context.Background()

			result, err := service.StartSprint(ctx, tt.req)

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotEmpty(t, result.ID)
			assert.Equal(t, domain.SprintStatusActive, result.Status)
			assert.Equal(t, clock.Now(), result.StartTime)
			require.NotNil(t, result.EndTime)
			assert.Equal(t, clock.Now().Add(time.Duration(tt.req.DurationMinutes)*time.Minute), *result.EndTime)
		})
	}
}

func TestSprintService_StartSprint_CancelsPreviousActive(t *testing.T) {
	service, clock := setupSprintService(t)
	ctx := context.Background()

	first, err := service.StartSprint(ctx, SprintStartRequest{Task: "First", DurationMinutes: 25})
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)
	second, err := service.StartSprint(ctx, SprintStartRequest{Task: "Second", DurationMinutes: 25})
	require.NoError(t, err)

	active, err := service.GetActiveSprint(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)

	sprints, err := service.ListSprints(ctx)
	require.NoError(t, err)
	require.Len(t, sprints, 2)

	for _, sprint := range sprints {
		if sprint.ID == first.ID {
			assert.Equal(t, domain.SprintStatusCancelled, sprint.Status)
			require.NotNil(t, sprint.ActualEndTime)
		}
	}
}

func TestSprintService_GetActiveSprint_NoneActive(t *testing.T) {
	service, _ := setupSprintService(t)

	active, err := service.GetActiveSprint(context.Background())

	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestSprintService_Nudge(t *testing.T) {
	service, clock := setupSprintService(t)
	ctx := context.Background()

	t.Run("unknown sprint id yields not found", func(t *testing.T) {
		nudge, err := service.Nudge(ctx, "missing-id", "")
		assert.Nil(t, nudge)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	sprint, err := service.StartSprint(ctx, SprintStartRequest{Task: "Deep work", DurationMinutes: 30})
	require.NoError(t, err)

	t.Run("defaults the message", func(t *testing.T) {
		clock.Advance(10 * time.Minute)

		nudge, err := service.Nudge(ctx, sprint.ID, "")
		require.NoError(t, err)
		require.NotNil(t, nudge)
		assert.Equal(t, sprint.ID, nudge.SprintID)
		assert.Equal(t, DefaultNudgeMessage, nudge.Message)
		assert.Equal(t, "Deep work", nudge.Task)
		assert.Equal(t, 20, nudge.RemainingMinutes)
	})

	t.Run("uses the caller's message when provided", func(t *testing.T) {
		nudge, err := service.Nudge(ctx, sprint.ID, "Back to it")
		require.NoError(t, err)
		require.NotNil(t, nudge)
		assert.Equal(t, "Back to it", nudge.Message)
	})

	t.Run("clamps remaining minutes at zero after the planned end", func(t *testing.T) {
		clock.Advance(time.Hour)

		nudge, err := service.Nudge(ctx, sprint.ID, "")
		require.NoError(t, err)
		require.NotNil(t, nudge)
		assert.Equal(t, 0, nudge.RemainingMinutes)
	})
}

func TestSprintService_LogDistraction(t *testing.T) {
	service, _ := setupSprintService(t)
	ctx := context.Background()

	t.Run("rejects empty distraction", func(t *testing.T) {
		result, err := service.LogDistraction(ctx, "some-id", "   ")
		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("unknown sprint id yields not found and no row", func(t *testing.T) {
		result, err := service.LogDistraction(ctx, "missing-id", "phone call")
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	sprint, err := service.StartSprint(ctx, SprintStartRequest{Task: "Deep work", DurationMinutes: 30})
	require.NoError(t, err)

	t.Run("records against the sprint", func(t *testing.T) {
		result, err := service.LogDistraction(ctx, sprint.ID, "phone call")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, sprint.ID, result.SprintID)
		assert.Equal(t, "phone call", result.Distraction)

		_, err = service.LogDistraction(ctx, sprint.ID, "slack ping")
		require.NoError(t, err)

		active, err := service.GetActiveSprint(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, []string{"phone call", "slack ping"}, active.Distractions)
	})
}

func TestSprintService_CompleteSprint(t *testing.T) {
	service, clock := setupSprintService(t)
	ctx := context.Background()

	t.Run("unknown sprint id yields not found", func(t *testing.T) {
		result, err := service.CompleteSprint(ctx, "missing-id", "")
		assert.Nil(t, result)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	started, err := service.StartSprint(ctx, SprintStartRequest{Task: "Deep work", DurationMinutes: 30})
	require.NoError(t, err)

	clock.Advance(28 * time.Minute)
	completed, err := service.CompleteSprint(ctx, started.ID, "Went well, two interruptions")
	require.NoError(t, err)
	require.NotNil(t, completed)
	assert.Equal(t, started.ID, completed.ID)
	assert.Equal(t, domain.SprintStatusCompleted, completed.Status)
	require.NotNil(t, completed.ActualEndTime)
	assert.Equal(t, clock.Now(), *completed.ActualEndTime)
	require.NotNil(t, completed.Retrospective)
	assert.Equal(t, "Went well, two interruptions", *completed.Retrospective)

	active, err := service.GetActiveSprint(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}
