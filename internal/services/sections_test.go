package services

import (
	"career-globe-service/internal/adapters/repositories"
	"career-globe-service/internal/domain"
	"context"
	"errors"
	"testing"
)

func TestSectionMilestonesKeepsOrderAndSkipsUnknown(t *testing.T) {
	repo := repositories.NewMemoryMilestoneRepository(testMilestones(),
		domain.StorySection{ID: "growth", Title: "Growth", MilestoneIDs: []string{"current", "gone", "work-paris"}},
		domain.StorySection{ID: "intro", Title: "The Journey"},
	)
	ctx := context.Background()

	got, err := SectionMilestones(ctx, repo, repo, "growth")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "current" || got[1].ID != "work-paris" {
		t.Fatalf("milestones = %v, want [current work-paris]", milestoneIDs(got))
	}

	empty, err := SectionMilestones(ctx, repo, repo, "intro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("intro milestones = %v, want none", milestoneIDs(empty))
	}

	if _, err := SectionMilestones(ctx, repo, repo, "missing"); !errors.Is(err, domain.ErrSectionNotFound) {
		t.Fatalf("missing section: err = %v, want ErrSectionNotFound", err)
	}
}

func milestoneIDs(ms []*domain.Milestone) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}
