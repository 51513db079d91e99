package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSprintIsActive(t *testing.T) {
	assert.True(t, Sprint{Status: SprintStatusActive}.IsActive())
	assert.False(t, Sprint{Status: SprintStatusCompleted}.IsActive())
	assert.False(t, Sprint{Status: SprintStatusCancelled}.IsActive())
}

func TestRemainingMinutes(t *testing.T) {
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("mid-sprint", func(t *testing.T) {
		end := now.Add(12*time.Minute + 30*time.Second)
		sprint := Sprint{EndTime: &end}
		assert.Equal(t, 12, sprint.RemainingMinutes(now))
	})

	t.Run("clamped at zero after planned end", func(t *testing.T) {
		end := now.Add(-10 * time.Minute)
		sprint := Sprint{EndTime: &end}
		assert.Equal(t, 0, sprint.RemainingMinutes(now))
	})

	t.Run("no planned end", func(t *testing.T) {
		assert.Equal(t, 0, Sprint{}.RemainingMinutes(now))
	})
}
