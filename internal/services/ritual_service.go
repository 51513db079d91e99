package services

import (
	"context"
	"strings"

	"personal-assistant/internal/domain"
	"personal-assistant/internal/errors"
	"personal-assistant/internal/repository/sqlite"
)

// ritualServiceImpl implements the RitualService interface
type ritualServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewRitualService creates a new RitualService instance
func NewRitualService(repo sqlite.Repository) RitualService {
	return &ritualServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// GetChecklist returns the checklist form of the named ritual.
// Names match case-insensitively.
func (r *ritualServiceImpl) GetChecklist(ctx context.Context, name string) (*domain.Checklist, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return nil, errors.NewValidationError("ritual name is required", nil)
	}

	ritual, err := r.loadRitual(ctx, trimmed)
	if err != nil {
		return nil, err
	}

	checklist := ritual.ToChecklist()
	return &checklist, nil
}

// ListRituals returns all rituals with their steps in order
func (r *ritualServiceImpl) ListRituals(ctx context.Context) ([]domain.Ritual, error) {
	dbRituals, err := r.repo.ListRituals(ctx)
	if err != nil {
		return nil, err
	}

	rituals := make([]domain.Ritual, len(dbRituals))
	for i, dbRitual := range dbRituals {
		dbSteps, err := r.repo.ListRitualSteps(ctx, dbRitual.ID)
		if err != nil {
			return nil, err
		}
		rituals[i] = r.mapper.Ritual.FromDatabase(*dbRitual, dbSteps)
	}
	return rituals, nil
}

func (r *ritualServiceImpl) loadRitual(ctx context.Context, name string) (*domain.Ritual, error) {
	dbRitual, err := r.repo.GetRitualByName(ctx, name)
	if err != nil {
		return nil, err
	}

	dbSteps, err := r.repo.ListRitualSteps(ctx, dbRitual.ID)
	if err != nil {
		return nil, err
	}

	ritual := r.mapper.Ritual.FromDatabase(*dbRitual, dbSteps)
	return &ritual, nil
}
