package sqlite

import "time"

// Sprint represents a timed focus session row.
type Sprint struct {
	ID              string
	Task            string
	Description     *string
	DurationMinutes int
	StartTime       time.Time
	EndTime         *time.Time
	ActualEndTime   *time.Time
	Status          string
	Retrospective   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SprintDistraction represents a distraction logged against a sprint.
// Rows are cascade-deleted with their sprint.
type SprintDistraction struct {
	ID          string
	SprintID    string
	Distraction string
	Timestamp   time.Time
	Addressed   bool
}

// Project represents a project row.
type Project struct {
	ID                 string
	Title              string
	Description        *string
	Status             string
	Priority           string
	Category           *string
	ProgressPercentage int
	Notes              *string
	IsHighPriority     bool
	IsCompleted        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DueDate            *time.Time
	CompletedAt        *time.Time
}

// Ritual represents a named checklist template row.
type Ritual struct {
	ID                       string
	Name                     string
	Title                    string
	Description              *string
	EstimatedDurationMinutes int
	IsActive                 bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// RitualStep represents one ordered step of a ritual.
// Rows are cascade-deleted with their ritual.
type RitualStep struct {
	ID               string
	RitualID         string
	StepText         string
	StepOrder        int
	IsRequired       bool
	EstimatedMinutes *int
	CreatedAt        time.Time
}
