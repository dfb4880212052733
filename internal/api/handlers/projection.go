package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/ports"
	"net/http"
	"strings"
)

// ProjectionHandler exposes the raw projection math over HTTP.
type ProjectionHandler struct {
	Repo      ports.MilestoneRepository
	Projector geo.Projector
}

// Project converts ?lat=&lng= to a point on the globe. radius defaults to
// the configured globe radius.
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	lat, err := queryFloat(r, "lat", 0, true)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	lng, err := queryFloat(r, "lng", 0, true)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	radius, err := queryFloat(r, "radius", h.Projector.Config().Radius, false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if radius <= 0 {
		writeError(w, r, http.StatusBadRequest, "radius must be positive")
		return
	}

	c := geo.Coordinate{Lat: lat, Lng: lng}
	p, err := geo.Project(c, radius)
	if err != nil {
		writeServiceError(w, r, "project", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProjectResponse{Coordinates: c, Radius: radius, Point: p})
}

func (h *ProjectionHandler) Unproject(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	var xyz [3]float64
	for i, key := range []string{"x", "y", "z"} {
		v, err := queryFloat(r, key, 0, true)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		xyz[i] = v
	}

	p := geo.CartesianPoint{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	c, err := h.Projector.Unproject(p)
	if err != nil {
		writeServiceError(w, r, "unproject", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.UnprojectResponse{Point: p, Coordinates: c})
}

// Distance returns the great-circle distance between two milestones.
// radius defaults to the Earth radius, giving kilometres.
func (h *ProjectionHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	fromID := strings.TrimSpace(q.Get("from"))
	toID := strings.TrimSpace(q.Get("to"))
	if fromID == "" || toID == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	radius, err := queryFloat(r, "radius", geo.EarthRadiusKm, false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if radius <= 0 {
		writeError(w, r, http.StatusBadRequest, "radius must be positive")
		return
	}

	from, err := h.Repo.GetMilestone(r.Context(), fromID)
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}
	to, err := h.Repo.GetMilestone(r.Context(), toID)
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	d, err := geo.GreatCircleDistance(from.Coordinates, to.Coordinates, radius)
	if err != nil {
		writeServiceError(w, r, "distance", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{From: fromID, To: toID, Radius: radius, Distance: d})
}
