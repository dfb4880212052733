package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"net/http"
)

// PathHandler serves the arcs drawn between consecutive milestones.
// ?mode=geodesic returns the sampled great circle instead of the Bézier arc.
type PathHandler struct {
	Repo      ports.MilestoneRepository
	Projector geo.Projector
}

func (h *PathHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	mode := r.URL.Query().Get("mode")
	if mode != "" && mode != "arc" && mode != "geodesic" {
		writeError(w, r, http.StatusBadRequest, "mode must be arc or geodesic")
		return
	}

	ms, err := h.Repo.ListMilestones(r.Context())
	if err != nil {
		writeServiceError(w, r, "list paths", err)
		return
	}

	ids := make([]string, len(ms))
	coords := make([]geo.Coordinate, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
		coords[i] = m.Coordinates
	}

	var arcs []services.FlightArc
	if mode == "geodesic" {
		arcs = make([]services.FlightArc, 0, max(len(ms)-1, 0))
		for i := 0; i+1 < len(ms); i++ {
			pts, err := services.GreatCirclePath(h.Projector, coords[i], coords[i+1], services.DefaultArcSegments)
			if err != nil {
				writeServiceError(w, r, "list paths", err)
				return
			}
			arcs = append(arcs, services.FlightArc{FromID: ids[i], ToID: ids[i+1], Points: pts})
		}
	} else {
		arcs, err = services.ArcsBetween(h.Projector, ids, coords)
		if err != nil {
			writeServiceError(w, r, "list paths", err)
			return
		}
	}

	res := dto.ListFlightArcsResponse{Arcs: make([]dto.FlightArcResponse, 0, len(arcs))}
	for _, a := range arcs {
		res.Arcs = append(res.Arcs, dto.FlightArcResponse{From: a.FromID, To: a.ToID, Points: a.Points})
	}

	writeJSON(w, r, http.StatusOK, res)
}
