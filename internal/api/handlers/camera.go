package handlers

import (
	"career-globe-service/internal/api/dto"
	"career-globe-service/internal/domain"
	"career-globe-service/internal/ports"
	"career-globe-service/internal/services"
	"context"
	"net/http"
	"strings"
)

const maxFPS = 240

type CameraHandler struct {
	Repo    ports.MilestoneRepository
	Planner *services.CameraPlanner
}

// Camera returns the camera focusing ?id=, or the overview camera when id is empty.
func (h *CameraHandler) Camera(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	state, err := h.stateFor(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, "camera", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toCameraResponse(id, state))
}

// Transition samples the eased camera move between two milestones.
// An empty from or to stands for the overview.
func (h *CameraHandler) Transition(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	q := r.URL.Query()
	fromID := strings.TrimSpace(q.Get("from"))
	toID := strings.TrimSpace(q.Get("to"))

	fps, err := queryFloat(r, "fps", services.DefaultFPS, false)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if fps < 1 || fps > maxFPS || fps != float64(int(fps)) {
		writeError(w, r, http.StatusBadRequest, "fps must be an integer between 1 and 240")
		return
	}

	from, err := h.stateFor(r.Context(), fromID)
	if err != nil {
		writeServiceError(w, r, "camera transition", err)
		return
	}
	to, err := h.stateFor(r.Context(), toID)
	if err != nil {
		writeServiceError(w, r, "camera transition", err)
		return
	}

	frames, err := h.Planner.Transition(from, to, services.DefaultTransitionDuration, int(fps))
	if err != nil {
		writeServiceError(w, r, "camera transition", err)
		return
	}

	res := dto.CameraTransitionResponse{
		From:   fromID,
		To:     toID,
		Frames: make([]dto.CameraFrameResponse, 0, len(frames)),
	}
	for _, f := range frames {
		res.Frames = append(res.Frames, dto.CameraFrameResponse{
			At:     f.At,
			T:      f.T,
			Camera: toCameraResponse("", f.State),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CameraHandler) stateFor(ctx context.Context, id string) (domain.CameraState, error) {
	if id == "" {
		return h.Planner.Overview(), nil
	}

	m, err := h.Repo.GetMilestone(ctx, id)
	if err != nil {
		return domain.CameraState{}, err
	}
	return h.Planner.TargetFor(m)
}

func toCameraResponse(id string, s domain.CameraState) dto.CameraResponse {
	return dto.CameraResponse{
		MilestoneID: id,
		Position:    s.Position,
		Target:      s.Target,
		FOV:         s.FOV,
	}
}
