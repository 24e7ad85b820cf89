package models

import "time"

// TeamSummary is one row of the dense team x gamemode x map win/loss table.
// MapName is OverallMap for the per-mode rollup rows. WinPct is nil (JSON
// null) when the team has never played the combination; "no data" is
// distinct from a 0% record.
type TeamSummary struct {
	Team     string   `json:"team"`
	Gamemode Gamemode `json:"gamemode"`
	MapName  string   `json:"map_name"`
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	Total    int      `json:"total"`
	WinPct   *float64 `json:"win_percentage"`
}

// SeriesSummary is the per-match per-team map tally. Each match contributes
// exactly two rows, mirror images of each other.
type SeriesSummary struct {
	MatchID         int64     `json:"match_id"`
	MatchDate       time.Time `json:"match_date"`
	Team            string    `json:"team"`
	TeamAbbr        string    `json:"team_abbr"`
	Opponent        string    `json:"opponent"`
	OppAbbr         string    `json:"opp_abbr"`
	MapWins         int       `json:"map_wins"`
	MapLosses       int       `json:"map_losses"`
	SeriesScoreDiff int       `json:"series_score_diff"`
}
