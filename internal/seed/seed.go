// Package seed loads the starter catalog of projects and rituals into an
// empty database. Seeding is idempotent: each catalog is skipped when its
// table already has rows.
package seed

import (
	"context"

	"go.uber.org/zap"

	"personal-assistant/internal/repository/sqlite"
)

type projectSeed struct {
	title          string
	description    string
	status         string
	priority       string
	category       string
	isHighPriority bool
	isCompleted    bool
}

type stepSeed struct {
	text    string
	minutes int
}

type ritualSeed struct {
	name            string
	title           string
	description     string
	durationMinutes int
	steps           []stepSeed
}

var initialProjects = []projectSeed{
	{
		title:          "MCP connection to assistant",
		description:    "Connect MCP (Model Context Protocol) to the assistant for enhanced functionality",
		status:         "completed",
		priority:       "high",
		category:       "Technical",
		isHighPriority: true,
		isCompleted:    true,
	},
	{
		title:          "Assistant v0 (rituals, sprints, logging)",
		description:    "Core assistant functionality with ritual tracking, sprint management, and logging",
		status:         "active",
		priority:       "high",
		category:       "Personal Development",
		isHighPriority: true,
	},
	{
		title:       "Improve Reminder Attention-Grabbing",
		description: "Make reminders more noticeable and effective",
		status:      "active",
		priority:    "medium",
		category:    "UX",
	},
	{
		title:       "Inbox Zero (daily)",
		description: "Daily task to maintain inbox zero",
		status:      "active",
		priority:    "medium",
		category:    "Productivity",
	},
	{
		title:       "Advertisements for Chi Life",
		description: "Create advertising materials for Chi Life business",
		status:      "active",
		priority:    "medium",
		category:    "Chi Life",
	},
	{
		title:       "Flyers, cards, etc. for Chi Life",
		description: "Physical marketing materials for Chi Life business",
		status:      "active",
		priority:    "medium",
		category:    "Chi Life",
	},
	{
		title:       "CJ Clarke for City Council",
		description: "Support CJ Clarke's city council campaign",
		status:      "active",
		priority:    "medium",
		category:    "Community",
	},
	{
		title:       "NBA Connect for Greg Foster",
		description: "NBA connection project for Greg Foster",
		status:      "active",
		priority:    "medium",
		category:    "Client Work",
	},
	{
		title:       "Discord+ with Mark and James",
		description: "Enhanced Discord functionality with Mark and James",
		status:      "active",
		priority:    "medium",
		category:    "Technical",
	},
	{
		title:          "Build the Personal Assistant app",
		description:    "Complete personal assistant application with full functionality",
		status:         "active",
		priority:       "high",
		category:       "Technical",
		isHighPriority: true,
	},
}

var initialRituals = []ritualSeed{
	{
		name:            "morning",
		title:           "Morning Ritual",
		description:     "Morning routine to start the day with focus and energy",
		durationMinutes: 20,
		steps: []stepSeed{
			{text: "Cold shower", minutes: 5},
			{text: "Put on Limitless AI pendant", minutes: 1},
			{text: "Quick projects/meetings review", minutes: 5},
			{text: "Journaling (gratitude + focus + visualization/affirmation)", minutes: 9},
		},
	},
	{
		name:            "evening",
		title:           "Evening Ritual",
		description:     "Evening routine for reflection and preparation",
		durationMinutes: 15,
		steps: []stepSeed{
			{text: "Charge all devices (including pendant)", minutes: 2},
			{text: "Retro journaling (3 wins + 1 lesson + tomorrow's focus)", minutes: 10},
			{text: "Looking ahead: pick tomorrow's focus", minutes: 3},
		},
	},
}

// Run seeds the starter projects and rituals into the repository.
func Run(ctx context.Context, repo sqlite.Repository, logger *zap.Logger) error {
	if err := seedProjects(ctx, repo, logger); err != nil {
		return err
	}
	return seedRituals(ctx, repo, logger)
}

func seedProjects(ctx context.Context, repo sqlite.Repository, logger *zap.Logger) error {
	count, err := repo.CountProjects(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("projects already seeded", zap.Int64("existing", count))
		return nil
	}

	for _, p := range initialProjects {
		description := p.description
		category := p.category
		project := &sqlite.Project{
			Title:          p.title,
			Description:    &description,
			Status:         p.status,
			Priority:       p.priority,
			Category:       &category,
			IsHighPriority: p.isHighPriority,
			IsCompleted:    p.isCompleted,
		}
		if err := repo.CreateProject(ctx, project); err != nil {
			return err
		}
	}

	logger.Info("seeded initial projects", zap.Int("count", len(initialProjects)))
	return nil
}

func seedRituals(ctx context.Context, repo sqlite.Repository, logger *zap.Logger) error {
	count, err := repo.CountRituals(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("rituals already seeded", zap.Int64("existing", count))
		return nil
	}

	for _, r := range initialRituals {
		description := r.description
		ritual := &sqlite.Ritual{
			Name:                     r.name,
			Title:                    r.title,
			Description:              &description,
			EstimatedDurationMinutes: r.durationMinutes,
			IsActive:                 true,
		}
		if err := repo.CreateRitual(ctx, ritual); err != nil {
			return err
		}

		for i, s := range r.steps {
			minutes := s.minutes
			step := &sqlite.RitualStep{
				RitualID:         ritual.ID,
				StepText:         s.text,
				StepOrder:        i + 1,
				IsRequired:       true,
				EstimatedMinutes: &minutes,
			}
			if err := repo.CreateRitualStep(ctx, step); err != nil {
				return err
			}
		}
	}

	logger.Info("seeded rituals", zap.Int("count", len(initialRituals)))
	return nil
}
