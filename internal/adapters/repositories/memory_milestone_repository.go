package repositories

import (
	"career-globe-service/internal/domain"
	"context"
	"fmt"
	"slices"
)

// In-memory implementation of the MilestoneRepository and SectionRepository
// ports, used for tests and for serving a seed file without a database.
// Reads return copies, so callers never mutate the stored milestones.
type MemoryMilestoneRepository struct {
	milestones []*domain.Milestone
	sections   []domain.StorySection
}

func NewMemoryMilestoneRepository(ms []*domain.Milestone, sections ...domain.StorySection) *MemoryMilestoneRepository {
	stored := make([]*domain.Milestone, len(ms))
	for i, m := range ms {
		stored[i] = m.Clone()
	}
	return &MemoryMilestoneRepository{milestones: stored, sections: cloneSections(sections)}
}

func (r *MemoryMilestoneRepository) ListMilestones(ctx context.Context) ([]*domain.Milestone, error) {
	out := make([]*domain.Milestone, len(r.milestones))
	for i, m := range r.milestones {
		out[i] = m.Clone()
	}
	return out, nil
}

func (r *MemoryMilestoneRepository) GetMilestone(ctx context.Context, id string) (*domain.Milestone, error) {
	i := domain.FindMilestone(r.milestones, id)
	if i < 0 {
		return nil, fmt.Errorf("get milestone %q: %w", id, domain.ErrMilestoneNotFound)
	}
	return r.milestones[i].Clone(), nil
}

func (r *MemoryMilestoneRepository) ListSections(ctx context.Context) ([]domain.StorySection, error) {
	return cloneSections(r.sections), nil
}

func (r *MemoryMilestoneRepository) GetSection(ctx context.Context, id string) (domain.StorySection, error) {
	i := slices.IndexFunc(r.sections, func(s domain.StorySection) bool { return s.ID == id })
	if i < 0 {
		return domain.StorySection{}, fmt.Errorf("get section %q: %w", id, domain.ErrSectionNotFound)
	}
	s := r.sections[i]
	s.MilestoneIDs = slices.Clone(s.MilestoneIDs)
	return s, nil
}

func cloneSections(in []domain.StorySection) []domain.StorySection {
	out := make([]domain.StorySection, len(in))
	for i, s := range in {
		s.MilestoneIDs = slices.Clone(s.MilestoneIDs)
		out[i] = s
	}
	return out
}
