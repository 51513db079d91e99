package domain

import "time"

// SprintStatus enumerates the lifecycle states of a sprint.
type SprintStatus string

const (
	SprintStatusActive    SprintStatus = "active"
	SprintStatusCompleted SprintStatus = "completed"
	SprintStatusCancelled SprintStatus = "cancelled"
)

// Sprint represents a timed, single-task focus session.
// Distractions holds the logged distraction texts in logged order.
type Sprint struct {
	ID              string       `json:"id"`
	Task            string       `json:"task"`
	Description     *string      `json:"description,omitempty"`
	DurationMinutes int          `json:"duration_minutes"`
	StartTime       time.Time    `json:"start_time"`
	EndTime         *time.Time   `json:"end_time,omitempty"`
	ActualEndTime   *time.Time   `json:"actual_end_time,omitempty"`
	Status          SprintStatus `json:"status"`
	Retrospective   *string      `json:"retrospective,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Distractions    []string     `json:"distractions"`
}

// IsActive reports whether the sprint is still running.
func (s Sprint) IsActive() bool {
	return s.Status == SprintStatusActive
}

// RemainingMinutes returns the whole minutes left until the planned end,
// clamped at zero. Sprints without a planned end have no time remaining.
func (s Sprint) RemainingMinutes(now time.Time) int {
	if s.EndTime == nil {
		return 0
	}
	remaining := int(s.EndTime.Sub(now).Minutes())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Distraction represents one logged distraction during a sprint.
type Distraction struct {
	ID          string    `json:"id"`
	SprintID    string    `json:"sprint_id"`
	Distraction string    `json:"distraction"`
	Timestamp   time.Time `json:"timestamp"`
	Addressed   bool      `json:"addressed"`
}

// Nudge is the response to a mid-sprint nudge request.
type Nudge struct {
	SprintID         string    `json:"sprint_id"`
	NudgeTime        time.Time `json:"nudge_time"`
	Message          string    `json:"message"`
	Task             string    `json:"task"`
	RemainingMinutes int       `json:"remaining_minutes"`
}
