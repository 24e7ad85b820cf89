package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// lineParam parses the required betting line query parameter.
func lineParam(r *http.Request) (float64, bool) {
	raw := r.URL.Query().Get("line")
	if raw == "" {
		return 0, false
	}
	line, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return line, true
}

// GetPlayerProp returns a player's over/under breakdown against a line
// @Summary Player Prop Report
// @Description Over/under/push counts and recommendation for a player's kills against a betting line
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Param line query number true "Betting line"
// @Param mode query string false "Gamemode filter"
// @Param map query string false "Map filter"
// @Success 200 {object} models.PropReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/{player}/prop [get]
func (h *Handler) GetPlayerProp(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	line, ok := lineParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "line must be a number")
		return
	}
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.props.Report(r.Context(), player, mode, mapName, line)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, report)
}

// GetPropStreak returns a player's current over/under run against a line
// @Summary Player Prop Streak
// @Description Signed over/under streak; a push breaks the run
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Param line query number true "Betting line"
// @Param mode query string false "Gamemode filter"
// @Param map query string false "Map filter"
// @Success 200 {object} models.PropStreakReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/{player}/prop/streak [get]
func (h *Handler) GetPropStreak(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	line, ok := lineParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "line must be a number")
		return
	}
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	streak, err := h.streaks.PropStreak(r.Context(), player, mode, mapName, line)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, streak)
}

// GetPlayerCard returns the combined prop view for a player and line
// @Summary Player Prop Card
// @Description Report, streak and recent kills for one player against one line
// @Tags Players
// @Produce json
// @Param player path string true "Player name"
// @Param line query number true "Betting line"
// @Param mode query string false "Gamemode filter"
// @Param map query string false "Map filter"
// @Success 200 {object} models.PropCard
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/{player}/card [get]
func (h *Handler) GetPlayerCard(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	line, ok := lineParam(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, "line must be a number")
		return
	}
	mode, mapName, err := modeParams(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := h.props.Card(r.Context(), player, mode, mapName, line)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, card)
}

// GetLines returns the current betting-line snapshot
// @Summary Current Lines
// @Description The betting lines loaded at the last dataset refresh
// @Tags Players
// @Produce json
// @Success 200 {array} models.PropLine
// @Router /lines [get]
func (h *Handler) GetLines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.props.Lines(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.jsonResponse(w, http.StatusOK, lines)
}
