package ports

import (
	"career-globe-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving Milestone entities from a data source.
type MilestoneRepository interface {
	// Retrieve all milestones in chronological display order.
	ListMilestones(ctx context.Context) ([]*domain.Milestone, error)
	// Retrieve one milestone; returns domain.ErrMilestoneNotFound when absent.
	GetMilestone(ctx context.Context, id string) (*domain.Milestone, error)
}
