package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite"
)

func setupRitualService(t *testing.T) (RitualService, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return NewRitualService(repo), repo
}

func seedRitual(t *testing.T, repo sqlite.Repository, name, title string, minutes int, steps []string) {
	ctx := context.Background()

	ritual := &sqlite.Ritual{
		Name:                     name,
		Title:                    title,
		EstimatedDurationMinutes: minutes,
		IsActive:                 true,
	}
	require.NoError(t, repo.CreateRitual(ctx, ritual))

	for i, text := range steps {
		step := &sqlite.RitualStep{
			RitualID:   ritual.ID,
			StepText:   text,
			StepOrder:  i + 1,
			IsRequired: true,
		}
		require.NoError(t, repo.CreateRitualStep(ctx, step))
	}
}

func TestRitualService_GetChecklist(t *testing.T) {
	service, repo := setupRitualService(t)
	seedRitual(t, repo, "morning", "Morning Ritual", 20, []string{
		"Review calendar",
		"Pick top priority",
		"Clear desk",
	})

	t.Run("returns steps in order with formatted duration", func(t *testing.T) {
		checklist, err := service.GetChecklist(context.Background(), "morning")
		require.NoError(t, err)
		require.NotNil(t, checklist)
		assert.Equal(t, "Morning Ritual", checklist.Ritual)
		assert.Equal(t, []string{"Review calendar", "Pick top priority", "Clear desk"}, checklist.Steps)
		assert.Equal(t, "20 minutes", checklist.EstimatedDuration)
	})

	t.Run("names match case-insensitively", func(t *testing.T) {
		checklist, err := service.GetChecklist(context.Background(), "  MORNING ")
		require.NoError(t, err)
		require.NotNil(t, checklist)
		assert.Equal(t, "Morning Ritual", checklist.Ritual)
	})

	t.Run("unknown ritual returns not found", func(t *testing.T) {
		checklist, err := service.GetChecklist(context.Background(), "midnight")
		assert.Nil(t, checklist)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		checklist, err := service.GetChecklist(context.Background(), "   ")
		assert.Nil(t, checklist)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestRitualService_ListRituals(t *testing.T) {
	service, repo := setupRitualService(t)
	seedRitual(t, repo, "morning", "Morning Ritual", 20, []string{"Review calendar"})
	seedRitual(t, repo, "evening", "Evening Shutdown", 15, []string{"Write tomorrow's plan", "Close tabs"})

	rituals, err := service.ListRituals(context.Background())
	require.NoError(t, err)
	require.Len(t, rituals, 2)

	byName := map[string]int{}
	for _, ritual := range rituals {
		byName[ritual.Name] = len(ritual.Steps)
	}
	assert.Equal(t, 1, byName["morning"])
	assert.Equal(t, 2, byName["evening"])
}
