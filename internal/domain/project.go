package domain

import (
	"strings"
	"time"
)

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s names a known project status.
func ValidProjectStatus(s string) bool {
	switch ProjectStatus(strings.ToLower(s)) {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusOnHold, ProjectStatusCancelled:
		return true
	}
	return false
}

// Priority enumerates project priorities.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ValidPriority reports whether p names a known priority.
func ValidPriority(p string) bool {
	switch Priority(strings.ToLower(p)) {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Project represents a tracked project with priority, status and progress.
type Project struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        *string       `json:"description,omitempty"`
	Status             ProjectStatus `json:"status"`
	Priority           Priority      `json:"priority"`
	Category           *string       `json:"category,omitempty"`
	ProgressPercentage int           `json:"progress_percentage"`
	Notes              *string       `json:"notes,omitempty"`
	IsHighPriority     bool          `json:"is_high_priority"`
	IsCompleted        bool          `json:"is_completed"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
	DueDate            *time.Time    `json:"due_date,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
}

// ProjectUpdate carries a partial update; only non-nil fields are applied.
type ProjectUpdate struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	Status             *string    `json:"status"`
	Priority           *string    `json:"priority"`
	Category           *string    `json:"category"`
	ProgressPercentage *int       `json:"progress_percentage"`
	Notes              *string    `json:"notes"`
	DueDate            *time.Time `json:"due_date"`
}
