package handlers

import (
	"career-globe-service/internal/domain"
	"career-globe-service/internal/geo"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps known error kinds to client statuses and hides the rest.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrMilestoneNotFound):
		writeError(w, r, http.StatusNotFound, "milestone not found")
	case errors.Is(err, domain.ErrSectionNotFound):
		writeError(w, r, http.StatusNotFound, "section not found")
	case errors.Is(err, geo.ErrInvalidInput):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		slog.ErrorContext(r.Context(), op+" failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func allowGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

// queryFloat reads a finite float query parameter. Missing parameters
// return fallback, or an error when required.
func queryFloat(r *http.Request, key string, fallback float64, required bool) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		if required {
			return 0, fmt.Errorf("%s is required", key)
		}
		return fallback, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s must be a finite number", key)
	}
	return v, nil
}
