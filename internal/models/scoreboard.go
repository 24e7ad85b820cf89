package models

import "time"

// ScoreboardRow pairs one player's box score with the opposing player it is
// displayed alongside, for a single map of a single match.
type ScoreboardRow struct {
	MatchID   int64     `json:"match_id"`
	MatchDate time.Time `json:"match_date"`
	MapNum    int       `json:"map_num"`
	Gamemode  Gamemode  `json:"gamemode"`
	MapName   string    `json:"map_name"`

	TeamAbbr  string `json:"team_abbr"`
	Player    string `json:"player"`
	Kills     int    `json:"kills"`
	TeamScore int    `json:"team_score"`

	OppAbbr   string `json:"opp_abbr"`
	OppPlayer string `json:"opp_player"`
	OppKills  int    `json:"opp_kills"`
	OppScore  int    `json:"opp_score"`
}
