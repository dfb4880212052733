package domain

import (
	"career-globe-service/internal/geo"
	"fmt"
	"slices"
	"strings"
)

// MilestoneType categorises a milestone for styling and filtering.
type MilestoneType string

const (
	MilestoneOrigin    MilestoneType = "origin"
	MilestoneEducation MilestoneType = "education"
	MilestoneWork      MilestoneType = "work"
	MilestoneProject   MilestoneType = "project"
	MilestoneCurrent   MilestoneType = "current"
)

var milestoneTypes = []MilestoneType{
	MilestoneOrigin,
	MilestoneEducation,
	MilestoneWork,
	MilestoneProject,
	MilestoneCurrent,
}

func (t MilestoneType) Valid() bool { return slices.Contains(milestoneTypes, t) }

// Represents a single career location rendered as a marker on the globe.
// EndDate is nil while the milestone is ongoing.
type Milestone struct {
	ID           string
	Title        string
	Company      string
	Location     string
	Coordinates  geo.Coordinate
	StartDate    string
	EndDate      *string
	Description  string
	Type         MilestoneType
	Technologies []string
	URL          string
	Color        string
}

// Ongoing reports whether the milestone has no end date.
func (m *Milestone) Ongoing() bool { return m.EndDate == nil }

// Validate checks the invariants required before a milestone is stored or rendered.
func (m *Milestone) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("validate milestone: id must be non-empty: %w", ErrInvalidMilestone)
	}
	if strings.ContainsAny(m.ID, "|@") {
		return fmt.Errorf("validate milestone %q: id must not contain '|' or '@': %w", m.ID, ErrInvalidMilestone)
	}
	if strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("validate milestone %q: title must be non-empty: %w", m.ID, ErrInvalidMilestone)
	}
	if !m.Type.Valid() {
		return fmt.Errorf("validate milestone %q: unknown type %q: %w", m.ID, m.Type, ErrInvalidMilestone)
	}
	if err := m.Coordinates.Validate(); err != nil {
		return fmt.Errorf("validate milestone %q: %w: %w", m.ID, ErrInvalidMilestone, err)
	}
	return nil
}

// Clone returns a deep copy so callers cannot reach stored state.
func (m *Milestone) Clone() *Milestone {
	c := *m
	if m.EndDate != nil {
		end := *m.EndDate
		c.EndDate = &end
	}
	if m.Technologies != nil {
		c.Technologies = slices.Clone(m.Technologies)
	}
	return &c
}

// FindMilestone returns the index of the milestone with the given id, or -1.
func FindMilestone(ms []*Milestone, id string) int {
	return slices.IndexFunc(ms, func(m *Milestone) bool { return m.ID == id })
}
