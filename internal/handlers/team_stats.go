package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetTeamSummaries returns the dense team win/loss table
// @Summary Team Summaries
// @Description Win/loss/win% per team, gamemode and map, including Overall rollups and zero-game rows
// @Tags Teams
// @Produce json
// @Param team query string false "Filter to one team"
// @Param mode query string false "Filter to one gamemode"
// @Success 200 {array} models.TeamSummary
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /teams/summaries [get]
func (h *Handler) GetTeamSummaries(w http.ResponseWriter, r *http.Request) {
	mode, _, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	team := r.URL.Query().Get("team")

	summaries, err := h.teamStats.Summaries(r.Context(), team, mode)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, summaries)
}

type h2hQuery struct {
	Team     string `validate:"required"`
	Opponent string `validate:"required"`
	Level    string `validate:"omitempty,oneof=map series"`
}

// GetHeadToHead returns the record between two teams
// @Summary Head-to-Head Record
// @Description Win/loss record between two teams at map or series level, formatted "W - L"
// @Tags Teams
// @Produce json
// @Param team query string true "Team name"
// @Param opponent query string true "Opponent name"
// @Param level query string false "map or series" default(map)
// @Param mode query string false "Gamemode filter (map level only)"
// @Param map query string false "Map filter (map level only)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /teams/h2h [get]
func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	q := h2hQuery{
		Team:     r.URL.Query().Get("team"),
		Opponent: r.URL.Query().Get("opponent"),
		Level:    r.URL.Query().Get("level"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "team and opponent are required; level must be map or series")
		return
	}
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var record string
	if q.Level == "series" {
		record, err = h.teamStats.SeriesRecord(r.Context(), q.Team, q.Opponent)
	} else {
		record, err = h.teamStats.MapRecord(r.Context(), q.Team, q.Opponent, mode, mapName)
	}
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]string{
		"team":     q.Team,
		"opponent": q.Opponent,
		"record":   record,
	})
}

// GetTeamStreak returns the team's current map win/loss streak
// @Summary Team Streak
// @Description Signed current streak: positive = consecutive map wins, negative = losses
// @Tags Teams
// @Produce json
// @Param team path string true "Team name"
// @Param mode query string false "Gamemode filter"
// @Param map query string false "Map filter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /teams/{team}/streak [get]
func (h *Handler) GetTeamStreak(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	streak, err := h.streaks.TeamStreak(r.Context(), team, mode, mapName)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"team":   team,
		"streak": streak,
	})
}
