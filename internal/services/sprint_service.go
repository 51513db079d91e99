package services

import (
	"context"
	"strings"
	"time"

	"personal-assistant/internal/domain"
	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite"
	"personal-assistant/internal/validation"
)

// DefaultNudgeMessage is used when a nudge request carries no message.
const DefaultNudgeMessage = "15-minute nudge"

// sprintServiceImpl implements the SprintService interface
type sprintServiceImpl struct {
	repo            sqlite.Repository
	clock           Clock
	mapper          *domain.Mapper
	sprintValidator *validation.SprintValidator
}

// NewSprintService creates a new SprintService instance
func NewSprintService(repo sqlite.Repository, clock Clock) SprintService {
	return &sprintServiceImpl{
		repo:            repo,
		clock:           clock,
		mapper:          domain.NewMapper(),
		sprintValidator: validation.NewSprintValidator(),
	}
}

// StartSprint begins a new sprint. Any sprint still marked active is
// cancelled first, so at most one sprint runs at a time.
func (s *sprintServiceImpl) StartSprint(ctx context.Context, req SprintStartRequest) (*domain.Sprint, error) {
	task := strings.TrimSpace(req.Task)
	if err := s.sprintValidator.ValidateStart(task, req.DurationMinutes); err != nil {
		return nil, errors.NewValidationError("invalid sprint", err)
	}

	now := s.clock.Now()
	if _, err := s.repo.CancelActiveSprints(ctx, now); err != nil {
		return nil, err
	}

	endTime := now.Add(time.Duration(req.DurationMinutes) * time.Minute)
	dbSprint := &sqlite.Sprint{
		Task:            task,
		DurationMinutes: req.DurationMinutes,
		StartTime:       now,
		EndTime:         &endTime,
		Status:          string(domain.SprintStatusActive),
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		dbSprint.Description = &description
	}

	if err := s.repo.CreateSprint(ctx, dbSprint); err != nil {
		return nil, err
	}

	sprint := s.mapper.Sprint.FromDatabase(*dbSprint)
	return &sprint, nil
}

// GetActiveSprint returns the running sprint with its distractions, or
// nil when no sprint is active.
func (s *sprintServiceImpl) GetActiveSprint(ctx context.Context) (*domain.Sprint, error) {
	dbSprint, err := s.repo.GetActiveSprint(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sprint := s.mapper.Sprint.FromDatabase(*dbSprint)
	if err := s.attachDistractions(ctx, &sprint); err != nil {
		return nil, err
	}
	return &sprint, nil
}

// ListSprints returns all sprints, newest first, with distractions attached.
func (s *sprintServiceImpl) ListSprints(ctx context.Context) ([]domain.Sprint, error) {
	dbSprints, err := s.repo.ListSprints(ctx)
	if err != nil {
		return nil, err
	}

	sprints := make([]domain.Sprint, len(dbSprints))
	for i, dbSprint := range dbSprints {
		sprints[i] = s.mapper.Sprint.FromDatabase(*dbSprint)
		if err := s.attachDistractions(ctx, &sprints[i]); err != nil {
			return nil, err
		}
	}
	return sprints, nil
}

// Nudge produces a focus reminder for the identified sprint.
func (s *sprintServiceImpl) Nudge(ctx context.Context, sprintID, message string) (*domain.Nudge, error) {
	dbSprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	sprint := s.mapper.Sprint.FromDatabase(*dbSprint)
	now := s.clock.Now()
	if message == "" {
		message = DefaultNudgeMessage
	}

	return &domain.Nudge{
		SprintID:         sprint.ID,
		NudgeTime:        now,
		Message:          message,
		Task:             sprint.Task,
		RemainingMinutes: sprint.RemainingMinutes(now),
	}, nil
}

// LogDistraction records a distraction against the identified sprint.
// A nonexistent sprint id creates no row.
func (s *sprintServiceImpl) LogDistraction(ctx context.Context, sprintID, distraction string) (*domain.Distraction, error) {
	trimmed := strings.TrimSpace(distraction)
	if err := s.sprintValidator.ValidateDistraction(trimmed); err != nil {
		return nil, errors.NewValidationError("invalid distraction", err)
	}

	dbSprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	dbDistraction := &sqlite.SprintDistraction{
		SprintID:    dbSprint.ID,
		Distraction: trimmed,
		Timestamp:   s.clock.Now(),
	}
	if err := s.repo.CreateDistraction(ctx, dbDistraction); err != nil {
		return nil, err
	}

	result := s.mapper.Sprint.DistractionFromDatabase(*dbDistraction)
	return &result, nil
}

// CompleteSprint marks the identified sprint completed, recording the
// actual end time and an optional retrospective.
func (s *sprintServiceImpl) CompleteSprint(ctx context.Context, sprintID, retrospective string) (*domain.Sprint, error) {
	dbSprint, err := s.repo.GetSprint(ctx, sprintID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	dbSprint.Status = string(domain.SprintStatusCompleted)
	dbSprint.ActualEndTime = &now
	if trimmed := strings.TrimSpace(retrospective); trimmed != "" {
		dbSprint.Retrospective = &trimmed
	}

	if err := s.repo.UpdateSprint(ctx, dbSprint); err != nil {
		return nil, err
	}

	sprint := s.mapper.Sprint.FromDatabase(*dbSprint)
	if err := s.attachDistractions(ctx, &sprint); err != nil {
		return nil, err
	}
	return &sprint, nil
}

// attachDistractions loads the distraction texts for a sprint in logged order.
func (s *sprintServiceImpl) attachDistractions(ctx context.Context, sprint *domain.Sprint) error {
	dbDistractions, err := s.repo.ListDistractions(ctx, sprint.ID)
	if err != nil {
		return err
	}

	texts := make([]string, len(dbDistractions))
	for i, dbDistraction := range dbDistractions {
		texts[i] = dbDistraction.Distraction
	}
	sprint.Distractions = texts
	return nil
}
