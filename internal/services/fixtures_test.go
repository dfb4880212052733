package services

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"testing"
)

func strPtr(s string) *string { return &s }

func testMilestones() []*domain.Milestone {
	return []*domain.Milestone{
		{
			ID:           "work-paris",
			Company:      "WebexpR / Wholehelp",
			Title:        "Full-stack Developer",
			Location:     "Paris, France",
			Coordinates:  geo.Coordinate{Lat: 48.8566, Lng: 2.3522},
			StartDate:    "2014",
			EndDate:      strPtr("2016"),
			Type:         domain.MilestoneWork,
			Technologies: []string{"PHP", "Angular"},
		},
		{
			ID:           "work-berlin",
			Company:      "Cognix Systems",
			Title:        "Frontend Developer",
			Location:     "Berlin, Germany",
			Coordinates:  geo.Coordinate{Lat: 52.5200, Lng: 13.4050},
			StartDate:    "2016",
			EndDate:      strPtr("2019"),
			Type:         domain.MilestoneWork,
			Technologies: []string{"Vue.js"},
		},
		{
			ID:           "current",
			Company:      "ShapeShift",
			Title:        "Frontend Engineer",
			Location:     "Compiègne, France",
			Coordinates:  geo.Coordinate{Lat: 49.4178, Lng: 2.8261},
			StartDate:    "2023",
			Type:         domain.MilestoneCurrent,
			Technologies: []string{"TypeScript", "React"},
		},
	}
}

func testProjector(t *testing.T) geo.Projector {
	t.Helper()
	p, err := geo.NewProjector(geo.DefaultConfig())
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	return p
}
