package handlers

import "net/http"

// GetSeriesSummaries returns per-match map tallies
// @Summary Series Summaries
// @Description Map wins/losses and series score differential per match per team, most recent first
// @Tags Series
// @Produce json
// @Param team query string false "Filter to one team"
// @Success 200 {array} models.SeriesSummary
// @Router /series [get]
func (h *Handler) GetSeriesSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.series.Summaries(r.Context(), r.URL.Query().Get("team"))
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, summaries)
}
