package validation

import (
	"strings"

	"personal-assistant/internal/domain"
)

const titleMaxLength = 255

// ProjectValidator provides validation for project operations
type ProjectValidator struct{}

// NewProjectValidator creates a new project validator
func NewProjectValidator() *ProjectValidator {
	return &ProjectValidator{}
}

// ValidateTitle validates a project title
func (pv *ProjectValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		validationError.AddRequiredError("title")
	} else if len(trimmed) > titleMaxLength {
		validationError.AddInvalidLengthError("title", trimmed, 1, titleMaxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidatePriority validates a project priority value
func (pv *ProjectValidator) ValidatePriority(priority string) error {
	if domain.ValidPriority(priority) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", priority, "must be one of high, medium, low")
	return validationError
}

// ValidateStatus validates a project status value
func (pv *ProjectValidator) ValidateStatus(status string) error {
	if domain.ValidProjectStatus(status) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("status", status, "must be one of active, completed, on_hold, cancelled")
	return validationError
}

// ValidateProgress validates a progress percentage
func (pv *ProjectValidator) ValidateProgress(progress int) error {
	if progress >= 0 && progress <= 100 {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidRangeError("progress_percentage", progress, "must be between 0 and 100")
	return validationError
}

// ValidateUpdate validates the supplied fields of a partial project update
func (pv *ProjectValidator) ValidateUpdate(update domain.ProjectUpdate) error {
	if update.Title != nil {
		if err := pv.ValidateTitle(*update.Title); err != nil {
			return err
		}
	}
	if update.Priority != nil {
		if err := pv.ValidatePriority(*update.Priority); err != nil {
			return err
		}
	}
	if update.Status != nil {
		if err := pv.ValidateStatus(*update.Status); err != nil {
			return err
		}
	}
	if update.ProgressPercentage != nil {
		if err := pv.ValidateProgress(*update.ProgressPercentage); err != nil {
			return err
		}
	}
	return nil
}
