package dto

import "career-globe-service/internal/geo"

type ProjectResponse struct {
	Coordinates geo.Coordinate     `json:"coordinates"`
	Radius      float64            `json:"radius"`
	Point       geo.CartesianPoint `json:"point"`
}

type UnprojectResponse struct {
	Point       geo.CartesianPoint `json:"point"`
	Coordinates geo.Coordinate     `json:"coordinates"`
}

type DistanceResponse struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Radius   float64 `json:"radius"`
	Distance float64 `json:"distance"`
}

type FlightArcResponse struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Points []geo.CartesianPoint `json:"points"`
}

type ListFlightArcsResponse struct {
	Arcs []FlightArcResponse `json:"arcs"`
}

type LegResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
}

type ItineraryResponse struct {
	Legs    []LegResponse `json:"legs"`
	TotalKm float64       `json:"total_km"`
}
