package ports

import (
	"career-globe-service/internal/domain"
	"context"
)

// Port: story sections grouping milestones into chapters.
type SectionRepository interface {
	// Retrieve all sections in story order.
	ListSections(ctx context.Context) ([]domain.StorySection, error)
	// Retrieve one section; returns domain.ErrSectionNotFound when absent.
	GetSection(ctx context.Context, id string) (domain.StorySection, error)
}
