package validation

import (
	"strings"
)

const (
	taskMaxLength      = 255
	maxDurationMinutes = 480
)

// SprintValidator provides validation for sprint operations
type SprintValidator struct{}

// NewSprintValidator creates a new sprint validator
func NewSprintValidator() *SprintValidator {
	return &SprintValidator{}
}

// ValidateStart validates a sprint start request
func (sv *SprintValidator) ValidateStart(task string, durationMinutes int) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(task)
	if trimmed == "" {
		validationError.AddRequiredError("task")
	} else if len(trimmed) > taskMaxLength {
		validationError.AddInvalidLengthError("task", trimmed, 1, taskMaxLength)
	}

	if durationMinutes < 1 || durationMinutes > maxDurationMinutes {
		validationError.AddInvalidRangeError("duration_minutes", durationMinutes,
			"must be between 1 and 480 minutes")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateDistraction validates a distraction log request
func (sv *SprintValidator) ValidateDistraction(distraction string) error {
	validationError := NewValidationError()

	if strings.TrimSpace(distraction) == "" {
		validationError.AddRequiredError("distraction")
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
