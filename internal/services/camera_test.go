package services

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"math"
	"testing"
	"time"
)

func TestCameraTargetOverview(t *testing.T) {
	planner := NewCameraPlanner(testProjector(t))

	got, err := planner.TargetFor(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := geo.CartesianPoint{Z: geo.DefaultCameraDistance}
	if got.Position != want || got.Target != (geo.CartesianPoint{}) {
		t.Fatalf("overview = %+v, want position %+v looking at origin", got, want)
	}
}

func TestCameraTargetFocusesMilestone(t *testing.T) {
	proj := testProjector(t)
	planner := NewCameraPlanner(proj)
	m := testMilestones()[0]

	got, err := planner.TargetFor(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDist := geo.DefaultCameraDistance * 0.8
	if math.Abs(got.Position.Magnitude()-wantDist) > 1e-9 {
		t.Fatalf("camera distance = %v, want %v", got.Position.Magnitude(), wantDist)
	}

	c, _ := geo.Unproject(got.Position)
	if math.Abs(c.Lat-m.Coordinates.Lat) > 1e-9 || math.Abs(c.Lng-m.Coordinates.Lng) > 1e-9 {
		t.Fatalf("camera looks at %+v, want %+v", c, m.Coordinates)
	}
}

func TestCameraTransitionEndpoints(t *testing.T) {
	planner := NewCameraPlanner(testProjector(t))
	from := planner.Overview()
	to, _ := planner.TargetFor(testMilestones()[1])

	frames, err := planner.Transition(from, to, DefaultTransitionDuration, DefaultFPS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(frames) != 91 {
		t.Fatalf("frames = %d, want 91", len(frames))
	}
	if frames[0].State != from {
		t.Fatalf("first frame = %+v, want %+v", frames[0].State, from)
	}
	if frames[len(frames)-1].State != to {
		t.Fatalf("last frame = %+v, want %+v", frames[len(frames)-1].State, to)
	}

	for i, f := range frames {
		d := f.State.Position.Magnitude()
		if d < DefaultMinZoom-1e-9 || d > DefaultMaxZoom+1e-9 {
			t.Fatalf("frame %d distance %v outside zoom bounds", i, d)
		}
		if i > 0 && f.T < frames[i-1].T {
			t.Fatalf("eased progress went backwards at frame %d", i)
		}
	}
}

func TestCameraTransitionRejectsBadTiming(t *testing.T) {
	planner := NewCameraPlanner(testProjector(t))
	s := planner.Overview()

	if _, err := planner.Transition(s, s, 0, 60); err == nil {
		t.Fatalf("expected error for zero duration")
	}
	if _, err := planner.Transition(s, s, time.Second, 0); err == nil {
		t.Fatalf("expected error for zero fps")
	}
}

func TestCameraOrbitTakesShortWay(t *testing.T) {
	planner := NewCameraPlanner(testProjector(t))

	path, err := planner.Orbit(geo.Coordinate{Lng: 170}, geo.Coordinate{Lng: -170}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("len = %d, want 3", len(path))
	}

	// Midpoint over the antimeridian sits on -Z.
	mid := path[1]
	if math.Abs(mid.Z+2) > 1e-9 {
		t.Fatalf("midpoint = %+v, want z = -2", mid)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.125, 0.5: 0.5, 0.75: 0.875, 1: 1, 2: 1}
	for in, want := range cases {
		if got := EaseInOutQuad(in); math.Abs(got-want) > 1e-12 {
			t.Errorf("EaseInOutQuad(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestCameraTransitionClampsOutOfRangeEndpoints(t *testing.T) {
	planner := NewCameraPlanner(testProjector(t))

	from := domain.CameraState{Position: geo.CartesianPoint{Z: 1}, FOV: DefaultFOV}
	to := domain.CameraState{Position: geo.CartesianPoint{X: 10}, FOV: DefaultFOV}

	frames, err := planner.Transition(from, to, time.Second, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := frames[0].State.Position
	if first != (geo.CartesianPoint{Z: DefaultMinZoom}) {
		t.Fatalf("first frame = %+v, want from pulled out to min zoom", first)
	}
	last := frames[len(frames)-1].State.Position
	if last != (geo.CartesianPoint{X: DefaultMaxZoom}) {
		t.Fatalf("last frame = %+v, want to pulled in to max zoom", last)
	}
	for i, f := range frames {
		if m := f.State.Position.Magnitude(); m < DefaultMinZoom-1e-9 || m > DefaultMaxZoom+1e-9 {
			t.Fatalf("frame %d at distance %v outside zoom shell", i, m)
		}
	}
}
