package dto

import "career-globe-service/internal/geo"

type MilestoneResponse struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Company      string             `json:"company"`
	Location     string             `json:"location"`
	Coordinates  geo.Coordinate     `json:"coordinates"`
	Position     geo.CartesianPoint `json:"position"`
	StartDate    string             `json:"start_date"`
	EndDate      *string            `json:"end_date"`
	Description  string             `json:"description"`
	Type         string             `json:"type"`
	Technologies []string           `json:"technologies"`
	URL          string             `json:"url,omitempty"`
	Color        string             `json:"color,omitempty"`
}

type ListMilestonesResponse struct {
	Milestones []MilestoneResponse `json:"milestones"`
}

type SectionResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	MilestoneIDs []string `json:"milestone_ids"`
}

type ListSectionsResponse struct {
	Sections []SectionResponse `json:"sections"`
}

type SectionMilestonesResponse struct {
	Section    string              `json:"section"`
	Milestones []MilestoneResponse `json:"milestones"`
}
