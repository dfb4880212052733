package services

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/platform/obs"
	"career-globe-service/internal/ports"
	"context"
	"fmt"
)

// SectionMilestones resolves the milestones of one story section in the
// section's order. Ids that name no milestone are skipped.
func SectionMilestones(
	ctx context.Context,
	sections ports.SectionRepository,
	repo ports.MilestoneRepository,
	sectionID string,
) (_ []*domain.Milestone, err error) {
	defer obs.Time(ctx, "sections.Milestones")(&err)

	sec, err := sections.GetSection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("section milestones: %w", err)
	}

	ms, err := repo.ListMilestones(ctx)
	if err != nil {
		return nil, fmt.Errorf("section milestones: list milestones: %w", err)
	}

	out := make([]*domain.Milestone, 0, len(sec.MilestoneIDs))
	for _, id := range sec.MilestoneIDs {
		if i := domain.FindMilestone(ms, id); i >= 0 {
			out = append(out, ms[i])
		}
	}

	return out, nil
}
