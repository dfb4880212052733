// Package geo converts geographic coordinates to positions on a Y-up sphere
// and back, and provides the distance and interpolation helpers used to place
// markers and cameras around the globe.
//
// All functions are pure and safe for concurrent use.
package geo

import (
	"fmt"
	"math"
)

const (
	// DefaultRadius is the globe radius in scene units.
	DefaultRadius = 1.0
	// DefaultCameraDistance is the overview camera distance from the globe center.
	DefaultCameraDistance = 2.5
	// EarthRadiusKm is the mean Earth radius used for real-world distances.
	EarthRadiusKm = 6371.0
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Project converts c to a point on a sphere of the given radius.
// Y is the polar axis; (lat 0, lng 0) maps to +Z.
func Project(c Coordinate, radius float64) (CartesianPoint, error) {
	if err := checkFinite("project", c.Lat, c.Lng, radius); err != nil {
		return CartesianPoint{}, err
	}

	latRad := c.Lat * degToRad
	lngRad := c.Lng * degToRad

	return CartesianPoint{
		X: radius * math.Cos(latRad) * math.Sin(lngRad),
		Y: radius * math.Sin(latRad),
		Z: radius * math.Cos(latRad) * math.Cos(lngRad),
	}, nil
}

// Unproject is the inverse of Project at radius |p|.
// The origin has no direction and yields the sentinel Coordinate{0, 0}.
func Unproject(p CartesianPoint) (Coordinate, error) {
	if err := checkFinite("unproject", p.X, p.Y, p.Z); err != nil {
		return Coordinate{}, err
	}

	radius := p.Magnitude()
	if radius == 0 {
		return Coordinate{}, nil
	}

	// Clamp against rounding so |y/r| never exceeds 1.
	s := math.Max(-1, math.Min(1, p.Y/radius))

	return Coordinate{
		Lat: math.Asin(s) * radToDeg,
		Lng: math.Atan2(p.X, p.Z) * radToDeg,
	}, nil
}

// GreatCircleDistance returns the Haversine distance between a and b on a
// sphere of the given radius, in the radius' units.
func GreatCircleDistance(a, b Coordinate, radius float64) (float64, error) {
	if err := checkFinite("great circle distance", a.Lat, a.Lng, b.Lat, b.Lng, radius); err != nil {
		return 0, err
	}

	lat1 := a.Lat * degToRad
	lat2 := b.Lat * degToRad
	dLat := (b.Lat - a.Lat) * degToRad
	dLng := (b.Lng - a.Lng) * degToRad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	h = math.Max(0, math.Min(1, h))

	return 2 * radius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

// Lerp blends a and b componentwise. t outside [0, 1] extrapolates.
// Longitudes are not normalized, so the path may wrap the long way around;
// see LerpShortest. A blend that leaves the float range is rejected.
func Lerp(a, b Coordinate, t float64) (Coordinate, error) {
	if err := checkFinite("lerp", a.Lat, a.Lng, b.Lat, b.Lng, t); err != nil {
		return Coordinate{}, err
	}

	out := Coordinate{
		Lat: lerp(a.Lat, b.Lat, t),
		Lng: lerp(a.Lng, b.Lng, t),
	}
	if err := checkFinite("lerp result", out.Lat, out.Lng); err != nil {
		return Coordinate{}, err
	}
	return out, nil
}

// LerpShortest is Lerp with the longitude delta wrapped into [-180, 180),
// so the blend always crosses the antimeridian when that is shorter.
// The resulting longitude is normalized.
func LerpShortest(a, b Coordinate, t float64) (Coordinate, error) {
	if err := checkFinite("lerp shortest", a.Lat, a.Lng, b.Lat, b.Lng, t); err != nil {
		return Coordinate{}, err
	}

	dLng := NormalizeLng(b.Lng - a.Lng)

	out := Coordinate{
		Lat: lerp(a.Lat, b.Lat, t),
		Lng: NormalizeLng(a.Lng + dLng*t),
	}
	if err := checkFinite("lerp shortest result", out.Lat, out.Lng); err != nil {
		return Coordinate{}, err
	}
	return out, nil
}

// CameraPositionFor places a viewpoint at the given distance from the globe
// center, on the ray through c.
func CameraPositionFor(c Coordinate, distance float64) (CartesianPoint, error) {
	p, err := Project(c, distance)
	if err != nil {
		return CartesianPoint{}, fmt.Errorf("camera position: %w", err)
	}
	return p, nil
}

// lerp returns exactly a at t=0 and exactly b at t=1. When b-a overflows
// the weighted form is used instead.
func lerp(a, b, t float64) float64 {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	d := b - a
	if math.IsInf(d, 0) {
		return a*(1-t) + b*t
	}
	return a + d*t
}
