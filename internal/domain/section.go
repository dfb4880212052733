package domain

import (
	"fmt"
	"strings"
)

// Groups milestones into one chapter of the career story.
// MilestoneIDs may name milestones that no longer exist; lookups skip them.
type StorySection struct {
	ID           string
	Title        string
	Subtitle     string
	MilestoneIDs []string
}

func (s *StorySection) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("validate section: id must be non-empty: %w", ErrInvalidSection)
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("validate section %q: title must be non-empty: %w", s.ID, ErrInvalidSection)
	}
	return nil
}
