package domain

import "career-globe-service/internal/geo"

// Camera placement for one frame: where it sits and what it looks at.
type CameraState struct {
	Position geo.CartesianPoint
	Target   geo.CartesianPoint
	FOV      float64
}

// Single timed sample of a camera transition. T is the eased progress in [0, 1].
type CameraFrame struct {
	At    float64
	T     float64
	State CameraState
}
