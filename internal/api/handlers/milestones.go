package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"career-globe-service/internal/ports"
	"fmt"
	"net/http"
	"strings"
)

// MilestoneHandler serves the career milestones together with their marker
// positions on the configured globe.
type MilestoneHandler struct {
	Repo      ports.MilestoneRepository
	Projector geo.Projector
}

func (h *MilestoneHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	ms, err := h.Repo.ListMilestones(r.Context())
	if err != nil {
		writeServiceError(w, r, "list milestones", err)
		return
	}

	res := dto.ListMilestonesResponse{Milestones: make([]dto.MilestoneResponse, 0, len(ms))}
	for _, m := range ms {
		item, err := toMilestoneResponse(m, h.Projector)
		if err != nil {
			writeServiceError(w, r, "list milestones", err)
			return
		}
		res.Milestones = append(res.Milestones, item)
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MilestoneHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "id is required")
		return
	}

	m, err := h.Repo.GetMilestone(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "get milestone", err)
		return
	}

	res, err := toMilestoneResponse(m, h.Projector)
	if err != nil {
		writeServiceError(w, r, "get milestone", err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toMilestoneResponse(m *domain.Milestone, proj geo.Projector) (dto.MilestoneResponse, error) {
	pos, err := proj.Project(m.Coordinates)
	if err != nil {
		return dto.MilestoneResponse{}, fmt.Errorf("milestone %q: %w", m.ID, err)
	}

	techs := m.Technologies
	if techs == nil {
		techs = []string{}
	}

	return dto.MilestoneResponse{
		ID:           m.ID,
		Title:        m.Title,
		Company:      m.Company,
		Location:     m.Location,
		Coordinates:  m.Coordinates,
		Position:     pos,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Description:  m.Description,
		Type:         string(m.Type),
		Technologies: techs,
		URL:          m.URL,
		Color:        m.Color,
	}, nil
}
