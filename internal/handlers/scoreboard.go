package handlers

import "net/http"

type scoreboardQuery struct {
	Team     string `validate:"required"`
	Opponent string `validate:"required"`
}

// GetScoreboard returns the two-team side-by-side box score table
// @Summary Scoreboard
// @Description Per-map player box scores for two teams, paired side by side
// @Tags Scoreboards
// @Produce json
// @Param team query string true "Team name"
// @Param opponent query string true "Opponent name"
// @Param mode query string false "Gamemode filter"
// @Param map query string false "Map filter"
// @Success 200 {array} models.ScoreboardRow
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /scoreboards [get]
func (h *Handler) GetScoreboard(w http.ResponseWriter, r *http.Request) {
	q := scoreboardQuery{
		Team:     r.URL.Query().Get("team"),
		Opponent: r.URL.Query().Get("opponent"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "team and opponent are required")
		return
	}
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.scoreboard.Build(r.Context(), q.Team, q.Opponent, mode, mapName)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, rows)
}
