package dto

import "career-globe-service/internal/geo"

type CameraResponse struct {
	MilestoneID string             `json:"milestone_id,omitempty"`
	Position    geo.CartesianPoint `json:"position"`
	Target      geo.CartesianPoint `json:"target"`
	FOV         float64            `json:"fov"`
}

type CameraFrameResponse struct {
	At     float64        `json:"at"`
	T      float64        `json:"t"`
	Camera CameraResponse `json:"camera"`
}

type CameraTransitionResponse struct {
	From   string                `json:"from"`
	To     string                `json:"to"`
	Frames []CameraFrameResponse `json:"frames"`
}
