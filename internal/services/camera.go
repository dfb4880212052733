package services

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// Camera sits slightly closer than the overview when focusing a milestone.
	focusFactor = 0.8

	DefaultMinZoom            = 1.5
	DefaultMaxZoom            = 4.0
	DefaultFOV                = 45.0
	DefaultTransitionDuration = 1500 * time.Millisecond
	DefaultFPS                = 60
)

// CameraPlanner derives camera targets and transitions from the globe config.
type CameraPlanner struct {
	proj    geo.Projector
	minZoom float64
	maxZoom float64
	fov     float64
}

func NewCameraPlanner(proj geo.Projector) *CameraPlanner {
	return &CameraPlanner{
		proj:    proj,
		minZoom: DefaultMinZoom,
		maxZoom: DefaultMaxZoom,
		fov:     DefaultFOV,
	}
}

// Overview is the resting camera: straight down +Z at the overview distance.
func (c *CameraPlanner) Overview() domain.CameraState {
	return domain.CameraState{
		Position: geo.CartesianPoint{Z: c.proj.Config().CameraDistance},
		FOV:      c.fov,
	}
}

// TargetFor returns the camera state focusing m, or the overview when m is nil.
func (c *CameraPlanner) TargetFor(m *domain.Milestone) (domain.CameraState, error) {
	if m == nil {
		return c.Overview(), nil
	}

	marker, err := c.proj.Project(m.Coordinates)
	if err != nil {
		return domain.CameraState{}, fmt.Errorf("camera target for %q: %w", m.ID, err)
	}

	dist := c.clampZoom(c.proj.Config().CameraDistance * focusFactor)

	return domain.CameraState{
		Position: marker.Normalize().Scale(dist),
		FOV:      c.fov,
	}, nil
}

// Transition samples an eased camera move from one state to another.
// Every frame position, the endpoints included, is pulled into the zoom
// shell [minZoom, maxZoom]. The first and last frames are from and to after
// that clamp, so in-range states are reproduced exactly.
func (c *CameraPlanner) Transition(from, to domain.CameraState, duration time.Duration, fps int) ([]domain.CameraFrame, error) {
	if duration <= 0 {
		return nil, errors.New("camera transition: duration must be positive")
	}
	if fps <= 0 {
		return nil, errors.New("camera transition: fps must be positive")
	}

	steps := int(math.Ceil(duration.Seconds() * float64(fps)))
	if steps < 1 {
		steps = 1
	}

	frames := make([]domain.CameraFrame, 0, steps+1)
	for i := 0; i <= steps; i++ {
		raw := float64(i) / float64(steps)
		t := EaseInOutQuad(raw)

		state := domain.CameraState{
			Position: lerpPoint(from.Position, to.Position, t),
			Target:   lerpPoint(from.Target, to.Target, t),
			FOV:      from.FOV + (to.FOV-from.FOV)*t,
		}
		if i == steps {
			state = to
		}
		state.Position = c.clampPosition(state.Position)

		frames = append(frames, domain.CameraFrame{
			At:    raw * duration.Seconds(),
			T:     t,
			State: state,
		})
	}

	return frames, nil
}

// Orbit moves the camera over the globe surface from one coordinate to
// another at a fixed distance, taking the short way around.
func (c *CameraPlanner) Orbit(from, to geo.Coordinate, distance float64, steps int) ([]geo.CartesianPoint, error) {
	if steps < 1 {
		return nil, errors.New("camera orbit: steps must be at least 1")
	}

	out := make([]geo.CartesianPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		coord, err := geo.LerpShortest(from, to, float64(i)/float64(steps))
		if err != nil {
			return nil, fmt.Errorf("camera orbit: %w", err)
		}
		p, err := geo.CameraPositionFor(coord, distance)
		if err != nil {
			return nil, fmt.Errorf("camera orbit: %w", err)
		}
		out = append(out, p)
	}

	return out, nil
}

func (c *CameraPlanner) clampZoom(d float64) float64 {
	return math.Max(c.minZoom, math.Min(c.maxZoom, d))
}

// clampPosition pulls a camera position back into the zoom shell.
// The origin is left alone: it has no direction to scale along.
func (c *CameraPlanner) clampPosition(p geo.CartesianPoint) geo.CartesianPoint {
	m := p.Magnitude()
	if m == 0 {
		return p
	}
	clamped := c.clampZoom(m)
	if clamped == m {
		return p
	}
	return p.Scale(clamped / m)
}

// EaseInOutQuad is the power2.inOut easing curve.
func EaseInOutQuad(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func lerpPoint(a, b geo.CartesianPoint, t float64) geo.CartesianPoint {
	return a.Add(b.Sub(a).Scale(t))
}
