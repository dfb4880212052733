package api

import (
	"career-globe-service/internal/api/handlers"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/platform/metrics"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"net/http"
)

// Deps are the collaborators the HTTP layer needs. Cache and Metrics may be nil.
type Deps struct {
	Repo       ports.MilestoneRepository
	Sections   ports.SectionRepository
	Cache      ports.LegCache
	Projector  geo.Projector
	Difficulty int
	Metrics    *metrics.Metrics
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	milestones := &handlers.MilestoneHandler{Repo: d.Repo, Projector: d.Projector}
	projection := &handlers.ProjectionHandler{Repo: d.Repo, Projector: d.Projector}
	camera := &handlers.CameraHandler{Repo: d.Repo, Planner: services.NewCameraPlanner(d.Projector)}
	paths := &handlers.PathHandler{Repo: d.Repo, Projector: d.Projector}
	itinerary := &handlers.ItineraryHandler{Repo: d.Repo, Cache: d.Cache}
	chain := &handlers.ChainHandler{Repo: d.Repo, Difficulty: d.Difficulty}
	sections := &handlers.SectionHandler{Sections: d.Sections, Repo: d.Repo, Projector: d.Projector}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/milestones", milestones.List)
	mux.HandleFunc("/milestones/{id}", milestones.Get)
	mux.HandleFunc("/project", projection.Project)
	mux.HandleFunc("/unproject", projection.Unproject)
	mux.HandleFunc("/distance", projection.Distance)
	mux.HandleFunc("/camera", camera.Camera)
	mux.HandleFunc("/camera/transition", camera.Transition)
	mux.HandleFunc("/paths", paths.List)
	mux.HandleFunc("/itinerary", itinerary.Get)
	mux.HandleFunc("/chain", chain.Get)
	mux.HandleFunc("/sections", sections.List)
	mux.HandleFunc("/sections/{id}/milestones", sections.Milestones)

	if d.Metrics != nil {
		mux.Handle("/metrics", d.Metrics.Handler())
	}

	return requestIDMiddleware(loggingMiddleware(mux, d.Metrics))
}
