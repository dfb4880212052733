package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"net/http"
	"strings"
)

// SectionHandler serves the story chapters and the milestones they group.
type SectionHandler struct {
	Sections  ports.SectionRepository
	Repo      ports.MilestoneRepository
	Projector geo.Projector
}

func (h *SectionHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	sections, err := h.Sections.ListSections(r.Context())
	if err != nil {
		writeServiceError(w, r, "list sections", err)
		return
	}

	res := dto.ListSectionsResponse{Sections: make([]dto.SectionResponse, 0, len(sections))}
	for _, s := range sections {
		ids := s.MilestoneIDs
		if ids == nil {
			ids = []string{}
		}
		res.Sections = append(res.Sections, dto.SectionResponse{
			ID:           s.ID,
			Title:        s.Title,
			Subtitle:     s.Subtitle,
			MilestoneIDs: ids,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *SectionHandler) Milestones(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	ms, err := services.SectionMilestones(r.Context(), h.Sections, h.Repo, id)
	if err != nil {
		writeServiceError(w, r, "section milestones", err)
		return
	}

	res := dto.SectionMilestonesResponse{Section: id, Milestones: make([]dto.MilestoneResponse, 0, len(ms))}
	for _, m := range ms {
		item, err := toMilestoneResponse(m, h.Projector)
		if err != nil {
			writeServiceError(w, r, "section milestones", err)
			return
		}
		res.Milestones = append(res.Milestones, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}
