package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-assistant/internal/domain"
)

func TestValidateTitle(t *testing.T) {
	validator := NewProjectValidator()

	assert.NoError(t, validator.ValidateTitle("Inbox Zero"))

	err := validator.ValidateTitle("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestValidatePriority(t *testing.T) {
	validator := NewProjectValidator()

	assert.NoError(t, validator.ValidatePriority("high"))
	assert.NoError(t, validator.ValidatePriority("MEDIUM"))

	err := validator.ValidatePriority("urgent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "priority")
}

func TestValidateStatus(t *testing.T) {
	validator := NewProjectValidator()

	assert.NoError(t, validator.ValidateStatus("on_hold"))

	err := validator.ValidateStatus("archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status")
}

func TestValidateProgress(t *testing.T) {
	validator := NewProjectValidator()

	assert.NoError(t, validator.ValidateProgress(0))
	assert.NoError(t, validator.ValidateProgress(100))
	assert.Error(t, validator.ValidateProgress(-1))
	assert.Error(t, validator.ValidateProgress(101))
}

func TestValidateUpdate(t *testing.T) {
	validator := NewProjectValidator()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.NoError(t, validator.ValidateUpdate(domain.ProjectUpdate{}))
	})

	t.Run("only supplied fields are checked", func(t *testing.T) {
		title := "New title"
		assert.NoError(t, validator.ValidateUpdate(domain.ProjectUpdate{Title: &title}))

		bad := "urgent"
		err := validator.ValidateUpdate(domain.ProjectUpdate{Priority: &bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "priority")
	})
}
