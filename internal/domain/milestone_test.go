package domain

import (
	"career-globe-service/internal/geo"
	"errors"
	"testing"
)

func TestMilestoneValidate(t *testing.T) {
	valid := Milestone{
		ID:          "work-paris",
		Title:       "Full-stack Developer",
		Coordinates: geo.Coordinate{Lat: 48.8566, Lng: 2.3522},
		Type:        MilestoneWork,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noID := valid
	noID.ID = "  "
	badType := valid
	badType.Type = "hobby"
	badCoords := valid
	badCoords.Coordinates = geo.Coordinate{Lat: 91}

	for name, m := range map[string]Milestone{"no id": noID, "bad type": badType, "bad coords": badCoords} {
		err := m.Validate()
		if !errors.Is(err, ErrInvalidMilestone) {
			t.Errorf("%s: err = %v, want ErrInvalidMilestone", name, err)
		}
	}

	if err := badCoords.Validate(); !errors.Is(err, geo.ErrInvalidInput) {
		t.Errorf("bad coords should also wrap geo.ErrInvalidInput, got %v", err)
	}
}

func TestMilestoneOngoing(t *testing.T) {
	end := "2019"
	done := Milestone{EndDate: &end}
	current := Milestone{}

	if done.Ongoing() {
		t.Errorf("milestone with end date reported ongoing")
	}
	if !current.Ongoing() {
		t.Errorf("milestone without end date reported finished")
	}
}

func TestFindMilestone(t *testing.T) {
	ms := []*Milestone{{ID: "a"}, {ID: "b"}}
	if got := FindMilestone(ms, "b"); got != 1 {
		t.Fatalf("FindMilestone(b) = %d, want 1", got)
	}
	if got := FindMilestone(ms, "z"); got != -1 {
		t.Fatalf("FindMilestone(z) = %d, want -1", got)
	}
}

func TestMilestoneValidateRejectsKeySeparators(t *testing.T) {
	for _, id := range []string{"a|b", "a@b"} {
		m := Milestone{ID: id, Title: "T", Type: MilestoneWork}
		if err := m.Validate(); !errors.Is(err, ErrInvalidMilestone) {
			t.Errorf("id %q: err = %v, want ErrInvalidMilestone", id, err)
		}
	}
}

func TestMilestoneCloneIsDeep(t *testing.T) {
	end := "2019"
	m := &Milestone{ID: "a", EndDate: &end, Technologies: []string{"Go"}}

	c := m.Clone()
	*c.EndDate = "2020"
	c.Technologies[0] = "Rust"
	c.Title = "changed"

	if *m.EndDate != "2019" || m.Technologies[0] != "Go" || m.Title != "" {
		t.Fatalf("clone shares state with original: %+v", m)
	}
}

func TestLegKeyRoundTrip(t *testing.T) {
	leg := Leg{
		FromID: "work-paris",
		ToID:   "work-berlin",
		From:   geo.Coordinate{Lat: 48.8566, Lng: 2.3522},
		To:     geo.Coordinate{Lat: 52.52, Lng: 13.405},
	}

	got, err := ParseLegKey(leg.Key())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != leg {
		t.Fatalf("ParseLegKey(%q) = %+v, want %+v", leg.Key(), got, leg)
	}

	moved := leg
	moved.To = geo.Coordinate{Lat: -33.8688, Lng: 151.2093}
	if moved.Key() == leg.Key() {
		t.Fatalf("moving an endpoint must change the key")
	}

	for _, bad := range []string{"nope", "a|b", "a@1,2|b@x,2", "@1,2|b@1,2"} {
		if _, err := ParseLegKey(bad); err == nil {
			t.Errorf("ParseLegKey(%q) should fail", bad)
		}
	}
}

func TestStorySectionValidate(t *testing.T) {
	ok := StorySection{ID: "intro", Title: "The Journey"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (&StorySection{ID: "x"}).Validate(); !errors.Is(err, ErrInvalidSection) {
		t.Fatalf("missing title: err = %v, want ErrInvalidSection", err)
	}
}
