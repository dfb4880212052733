package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned when a projection input is NaN or infinite.
var ErrInvalidInput = errors.New("invalid input")

// Coordinate is an immutable latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CartesianPoint is a position in a Y-up, sphere-centered 3D space.
type CartesianPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Magnitude is the Euclidean length of p. Hypot keeps it finite and
// non-zero for any finite, non-zero point.
func (p CartesianPoint) Magnitude() float64 {
	return math.Hypot(math.Hypot(p.X, p.Y), p.Z)
}

// Scale multiplies every component by s.
func (p CartesianPoint) Scale(s float64) CartesianPoint {
	return CartesianPoint{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Add returns the component-wise sum p + q.
func (p CartesianPoint) Add(q CartesianPoint) CartesianPoint {
	return CartesianPoint{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p CartesianPoint) Sub(q CartesianPoint) CartesianPoint {
	return CartesianPoint{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Normalize returns the unit vector pointing at p.
// The zero vector is returned unchanged.
func (p CartesianPoint) Normalize() CartesianPoint {
	m := p.Magnitude()
	if m == 0 {
		return p
	}
	return p.Scale(1 / m)
}

// Validate reports whether c lies inside the geographic range
// lat [-90, 90], lng [-180, 180]. The projector itself does not require this.
func (c Coordinate) Validate() error {
	if err := checkFinite("coordinate", c.Lat, c.Lng); err != nil {
		return err
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("validate coordinate: lat %v out of range [-90, 90]: %w", c.Lat, ErrInvalidInput)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("validate coordinate: lng %v out of range [-180, 180]: %w", c.Lng, ErrInvalidInput)
	}
	return nil
}

// NormalizeLng wraps a longitude into [-180, 180).
func NormalizeLng(lng float64) float64 {
	l := math.Mod(lng+180, 360)
	if l < 0 {
		l += 360
	}
	return l - 180
}

func checkFinite(op string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: non-finite value %v: %w", op, v, ErrInvalidInput)
		}
	}
	return nil
}
