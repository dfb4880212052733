package services

import (
	"career-globe-service/internal/geo"
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
)

const (
	DefaultArcHeight   = 0.3
	DefaultArcSegments = 64
	MarkerElevation    = 0.01
	minimumArcSegments = 1
)

// FlightArc is one drawn connection between two milestones.
type FlightArc struct {
	FromID string
	ToID   string
	Points []geo.CartesianPoint
}

// Arc builds a quadratic Bézier arc between the projected start and end.
//
// The control point is the chord midpoint pushed out to radius + chord*arcHeight,
// so longer hops bulge higher above the globe.
func Arc(proj geo.Projector, start, end geo.Coordinate, arcHeight float64, segments int) ([]geo.CartesianPoint, error) {
	if segments < minimumArcSegments {
		return nil, errors.New("flight arc: segments must be at least 1")
	}

	a, err := proj.Project(start)
	if err != nil {
		return nil, fmt.Errorf("flight arc: project start: %w", err)
	}
	b, err := proj.Project(end)
	if err != nil {
		return nil, fmt.Errorf("flight arc: project end: %w", err)
	}

	chord := b.Sub(a).Magnitude()
	elevation := proj.Config().Radius + chord*arcHeight
	control := a.Add(b).Scale(0.5).Normalize().Scale(elevation)

	// Antipodal endpoints have a zero midpoint; lift it over the pole instead.
	if a.Add(b).Magnitude() == 0 {
		control = geo.CartesianPoint{Y: elevation}
	}

	points := make([]geo.CartesianPoint, 0, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, quadraticBezier(a, control, b, t))
	}
	points[0] = a
	points[segments] = b

	return points, nil
}

// ArcsBetween connects consecutive coordinates with arcs.
func ArcsBetween(proj geo.Projector, ids []string, coords []geo.Coordinate) ([]FlightArc, error) {
	if len(ids) != len(coords) {
		return nil, fmt.Errorf("flight arcs: %d ids for %d coordinates", len(ids), len(coords))
	}

	arcs := make([]FlightArc, 0, max(len(coords)-1, 0))
	for i := 0; i+1 < len(coords); i++ {
		pts, err := Arc(proj, coords[i], coords[i+1], DefaultArcHeight, DefaultArcSegments)
		if err != nil {
			return nil, fmt.Errorf("flight arcs: %q -> %q: %w", ids[i], ids[i+1], err)
		}
		arcs = append(arcs, FlightArc{FromID: ids[i], ToID: ids[i+1], Points: pts})
	}

	return arcs, nil
}

// GreatCirclePath samples the geodesic between a and b and lifts each sample
// onto the globe, for callers that need the geometrically exact route.
func GreatCirclePath(proj geo.Projector, a, b geo.Coordinate, segments int) ([]geo.CartesianPoint, error) {
	if segments < minimumArcSegments {
		return nil, errors.New("great circle path: segments must be at least 1")
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("great circle path: start: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("great circle path: end: %w", err)
	}

	pa := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lng))
	pb := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lng))

	out := make([]geo.CartesianPoint, 0, segments+1)
	for i := 0; i <= segments; i++ {
		ll := s2.LatLngFromPoint(s2.Interpolate(float64(i)/float64(segments), pa, pb))
		p, err := proj.Elevated(geo.Coordinate{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}, MarkerElevation)
		if err != nil {
			return nil, fmt.Errorf("great circle path: %w", err)
		}
		out = append(out, p)
	}

	return out, nil
}

func quadraticBezier(p0, p1, p2 geo.CartesianPoint, t float64) geo.CartesianPoint {
	u := 1 - t
	return p0.Scale(u * u).Add(p1.Scale(2 * u * t)).Add(p2.Scale(t * t))
}
