package models

import "time"

// Observation is one row of the flat match-level dataset: one player, on one
// map, in one match. The loader supplies everything through SeriesResult;
// Opponent, OppAbbr, TotalScore and ScoreDiff are derived by the opponent
// join in the logic package.
type Observation struct {
	MatchID      int64     `json:"match_id"`
	MatchDate    time.Time `json:"match_date"`
	MapNum       int       `json:"map_num"`
	Gamemode     Gamemode  `json:"gamemode"`
	MapName      string    `json:"map_name"`
	Team         string    `json:"team"`
	TeamAbbr     string    `json:"team_abbr"`
	Player       string    `json:"player"`
	Kills        int       `json:"kills"`
	TeamScore    int       `json:"team_score"`
	OppScore     int       `json:"opp_score"`
	MapResult    int       `json:"map_result"`    // 1 = win, 0 = loss
	SeriesResult int       `json:"series_result"` // 1 = win, 0 = loss

	// Derived by logic.AttachOpponents.
	Opponent   string `json:"opponent"`
	OppAbbr    string `json:"opp_abbr"`
	TotalScore int    `json:"total_score"`
	ScoreDiff  int    `json:"score_diff"`
}

// Team is a league team as known to the reference store.
type Team struct {
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}
