package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/logic"
	"github.com/dharlerjr/cdl-prizepicks-betting-sub000/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint: dependencies reachable and a snapshot published.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snap := h.refresher.Snapshot()
	checks := map[string]bool{
		"postgres":   h.pg.Ping(ctx) == nil,
		"clickhouse": h.ch.Ping(ctx) == nil,
		"redis":      h.redis.Ping(ctx).Err() == nil,
		"snapshot":   snap != nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	body := map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	}
	if snap != nil {
		body["snapshot_id"] = snap.ID
		body["snapshot_age_seconds"] = int(time.Since(snap.LoadedAt).Seconds())
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(body)
}

// TriggerRefresh recomputes the derived view on demand
// @Summary Refresh dataset
// @Description Reload observations, teams and lines and rebuild all summaries
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /refresh [post]
func (h *Handler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.refresher.Refresh(r.Context()); err != nil {
		h.logger.Errorw("Manual refresh failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Refresh failed")
		return
	}
	snap := h.refresher.Snapshot()
	h.jsonResponse(w, http.StatusOK, map[string]string{
		"status":   "refreshed",
		"snapshot": snap.ID,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps service failures to HTTP responses. A missing snapshot
// means the service is still warming up; a data-integrity error means the
// upstream dataset is corrupt and the statistic cannot be trusted.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	var integrity *logic.DataIntegrityError
	switch {
	case errors.Is(err, logic.ErrNoSnapshot):
		h.errorResponse(w, http.StatusServiceUnavailable, "Dataset not loaded yet")
	case errors.As(err, &integrity):
		h.logger.Errorw("Data integrity violation", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, integrity.Error())
	default:
		h.logger.Errorw("Service error", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// modeParams extracts and validates the optional mode and map query
// filters. A map filter requires a mode, since pools differ per mode.
func modeParams(r *http.Request) (models.Gamemode, string, error) {
	var mode models.Gamemode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := models.ParseGamemode(raw)
		if err != nil {
			return "", "", err
		}
		mode = parsed
	}
	mapName := r.URL.Query().Get("map")
	if mapName != "" {
		if mode == "" {
			return "", "", errors.New("map filter requires a mode filter")
		}
		if !models.ValidMap(mode, mapName) {
			return "", "", errors.New("map " + mapName + " is not in the " + string(mode) + " pool")
		}
	}
	return mode, mapName, nil
}
