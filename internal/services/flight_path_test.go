package services

import (
	"career-globe-service/internal/geo"
	"math"
	"testing"
)

func TestArcEndpointsAndApex(t *testing.T) {
	proj := testProjector(t)
	paris := geo.Coordinate{Lat: 48.8566, Lng: 2.3522}
	berlin := geo.Coordinate{Lat: 52.5200, Lng: 13.4050}

	pts, err := Arc(proj, paris, berlin, DefaultArcHeight, DefaultArcSegments)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != DefaultArcSegments+1 {
		t.Fatalf("points = %d, want %d", len(pts), DefaultArcSegments+1)
	}

	a, _ := proj.Project(paris)
	b, _ := proj.Project(berlin)
	if pts[0] != a || pts[len(pts)-1] != b {
		t.Fatalf("arc endpoints do not match projected markers")
	}

	// The middle of the curve is lifted above the globe surface.
	if mid := pts[DefaultArcSegments/2].Magnitude(); mid <= 1 {
		t.Fatalf("arc midpoint magnitude = %v, want > 1", mid)
	}
}

func TestArcCoincidentEndpoints(t *testing.T) {
	proj := testProjector(t)
	c := geo.Coordinate{Lat: 10, Lng: 20}

	pts, err := Arc(proj, c, c, DefaultArcHeight, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := proj.Project(c)
	for i, p := range pts {
		if p.Sub(want).Magnitude() > 1e-12 {
			t.Fatalf("point %d = %+v, want %+v", i, p, want)
		}
	}
}

func TestArcAntipodal(t *testing.T) {
	proj := testProjector(t)
	pts, err := Arc(proj, geo.Coordinate{Lng: 0}, geo.Coordinate{Lng: 180}, DefaultArcHeight, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			t.Fatalf("antipodal arc produced NaN: %+v", pts)
		}
	}
}

func TestArcsBetween(t *testing.T) {
	proj := testProjector(t)
	ms := testMilestones()

	ids := make([]string, 0, len(ms))
	coords := make([]geo.Coordinate, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.ID)
		coords = append(coords, m.Coordinates)
	}

	arcs, err := ArcsBetween(proj, ids, coords)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arcs) != 2 {
		t.Fatalf("arcs = %d, want 2", len(arcs))
	}
	if arcs[1].FromID != "work-berlin" || arcs[1].ToID != "current" {
		t.Fatalf("second arc = %s -> %s", arcs[1].FromID, arcs[1].ToID)
	}

	if _, err := ArcsBetween(proj, ids[:1], coords); err == nil {
		t.Fatalf("expected error for mismatched ids and coordinates")
	}

	none, err := ArcsBetween(proj, nil, nil)
	if err != nil || len(none) != 0 {
		t.Fatalf("empty input: arcs=%v err=%v", none, err)
	}
}

func TestGreatCirclePathStaysOnShell(t *testing.T) {
	proj := testProjector(t)
	a := geo.Coordinate{Lat: 48.8566, Lng: 2.3522}
	b := geo.Coordinate{Lat: 40.7128, Lng: -74.0060}

	pts, err := GreatCirclePath(proj, a, b, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 17 {
		t.Fatalf("points = %d, want 17", len(pts))
	}

	want := 1 + MarkerElevation
	for i, p := range pts {
		if math.Abs(p.Magnitude()-want) > 1e-9 {
			t.Fatalf("point %d magnitude = %v, want %v", i, p.Magnitude(), want)
		}
	}

	start, _ := geo.Unproject(pts[0])
	if math.Abs(start.Lat-a.Lat) > 1e-6 || math.Abs(start.Lng-a.Lng) > 1e-6 {
		t.Fatalf("path starts at %+v, want %+v", start, a)
	}

	if _, err := GreatCirclePath(proj, geo.Coordinate{Lat: 95}, b, 4); err == nil {
		t.Fatalf("expected error for out-of-range latitude")
	}
}
