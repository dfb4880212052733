package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"net/http"
)

type ItineraryHandler struct {
	Repo  ports.MilestoneRepository
	Cache ports.LegCache
}

func (h *ItineraryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	it, err := services.BuildItinerary(r.Context(), h.Repo, h.Cache)
	if err != nil {
		writeServiceError(w, r, "build itinerary", err)
		return
	}

	res := dto.ItineraryResponse{
		Legs:    make([]dto.LegResponse, 0, len(it.Legs)),
		TotalKm: it.TotalKm,
	}
	for _, l := range it.Legs {
		res.Legs = append(res.Legs, dto.LegResponse{From: l.FromID, To: l.ToID, DistanceKm: l.DistanceKm})
	}

	writeJSON(w, r, http.StatusOK, res)
}
