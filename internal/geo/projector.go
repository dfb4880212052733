package geo

import "fmt"

// Config holds the globe tunables. It is copied into a Projector at
// construction and never mutated afterwards.
type Config struct {
	Radius         float64
	CameraDistance float64
}

// DefaultConfig is the unit globe with the overview camera at 2.5 radii.
func DefaultConfig() Config {
	return Config{Radius: DefaultRadius, CameraDistance: DefaultCameraDistance}
}

// Projector binds the package functions to a fixed Config.
type Projector struct {
	cfg Config
}

// NewProjector validates cfg: both values finite, radius positive and the
// camera outside the globe.
func NewProjector(cfg Config) (Projector, error) {
	if err := checkFinite("new projector", cfg.Radius, cfg.CameraDistance); err != nil {
		return Projector{}, err
	}
	if cfg.Radius <= 0 {
		return Projector{}, fmt.Errorf("new projector: radius must be positive, got %v: %w", cfg.Radius, ErrInvalidInput)
	}
	if cfg.CameraDistance <= cfg.Radius {
		return Projector{}, fmt.Errorf(
			"new projector: camera distance %v must exceed radius %v: %w",
			cfg.CameraDistance, cfg.Radius, ErrInvalidInput,
		)
	}
	return Projector{cfg: cfg}, nil
}

// Config returns the settings the projector was built with.
func (p Projector) Config() Config { return p.cfg }

// Project places c on the configured globe surface.
func (p Projector) Project(c Coordinate) (CartesianPoint, error) {
	return Project(c, p.cfg.Radius)
}

// Elevated places c at height above the globe surface.
func (p Projector) Elevated(c Coordinate, height float64) (CartesianPoint, error) {
	return Project(c, p.cfg.Radius+height)
}

// Unproject recovers the coordinate of pt; the radius is implied by |pt|.
func (p Projector) Unproject(pt CartesianPoint) (Coordinate, error) {
	return Unproject(pt)
}

// Distance is the great-circle distance in globe units.
func (p Projector) Distance(a, b Coordinate) (float64, error) {
	return GreatCircleDistance(a, b, p.cfg.Radius)
}

// CameraPosition places the camera at the configured overview distance.
func (p Projector) CameraPosition(c Coordinate) (CartesianPoint, error) {
	return CameraPositionFor(c, p.cfg.CameraDistance)
}
