package domain

import (
	"fmt"
	"time"
)

// Ritual represents a named, ordered checklist template.
type Ritual struct {
	ID                       string       `json:"id"`
	Name                     string       `json:"name"`
	Title                    string       `json:"title"`
	Description              *string      `json:"description,omitempty"`
	EstimatedDurationMinutes int          `json:"estimated_duration_minutes"`
	IsActive                 bool         `json:"is_active"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
	Steps                    []RitualStep `json:"steps"`
}

// RitualStep is one ordered entry of a ritual checklist.
type RitualStep struct {
	ID               string `json:"id"`
	RitualID         string `json:"ritual_id"`
	StepText         string `json:"step_text"`
	Order            int    `json:"order"`
	IsRequired       bool   `json:"is_required"`
	EstimatedMinutes *int   `json:"estimated_minutes,omitempty"`
}

// Checklist is the client-facing shape of a ritual: the title, the step
// texts in order, and a human-readable total duration.
type Checklist struct {
	Ritual            string   `json:"ritual"`
	Steps             []string `json:"steps"`
	EstimatedDuration string   `json:"estimated_duration"`
}

// ToChecklist flattens a ritual into its checklist form.
func (r Ritual) ToChecklist() Checklist {
	steps := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		steps[i] = step.StepText
	}
	return Checklist{
		Ritual:            r.Title,
		Steps:             steps,
		EstimatedDuration: fmt.Sprintf("%d minutes", r.EstimatedDurationMinutes),
	}
}
